package repos_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/repos/testutil"
	"github.com/senxilab/senxi-backend/internal/types"
)

func TestLikeRepoDuplicateIsNotAnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repos.NewLikeRepo(db, newTestLogger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "13800138000")
	post := testutil.SeedPost(t, db, user.ID, "新房除醛记录")

	created, err := repo.Create(ctx, nil, &types.PostLike{
		ID:     uuid.New(),
		PostID: post.ID,
		UserID: user.ID,
	})
	if err != nil || !created {
		t.Fatalf("first like: created=%v err=%v", created, err)
	}

	created, err = repo.Create(ctx, nil, &types.PostLike{
		ID:     uuid.New(),
		PostID: post.ID,
		UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("duplicate like: %v", err)
	}
	if created {
		t.Fatal("duplicate like reported as new")
	}
}

func TestLikeRepoDeleteReportsExistence(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repos.NewLikeRepo(db, newTestLogger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "13800138001")
	post := testutil.SeedPost(t, db, user.ID, "净化器静音体验")

	if _, err := repo.Create(ctx, nil, &types.PostLike{ID: uuid.New(), PostID: post.ID, UserID: user.ID}); err != nil {
		t.Fatalf("like: %v", err)
	}

	removed, err := repo.Delete(ctx, nil, post.ID, user.ID)
	if err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}

	removed, err = repo.Delete(ctx, nil, post.ID, user.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if removed {
		t.Fatal("second delete reported a removed row")
	}

	exists, err := repo.Exists(ctx, nil, post.ID, user.ID)
	if err != nil || exists {
		t.Fatalf("exists after delete: %v err=%v", exists, err)
	}
}

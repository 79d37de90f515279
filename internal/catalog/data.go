package catalog

func defaultCategories() []Category {
	return []Category{
		{ID: "all", Name: "全部产品", Icon: "grid"},
		{ID: "home", Name: "家用净化器", Icon: "home"},
		{ID: "car", Name: "车载净化器", Icon: "car"},
		{ID: "accessory", Name: "滤芯配件", Icon: "package"},
	}
}

func defaultProducts() []Product {
	return []Product{
		{
			ID:               "mini-01",
			Name:             "净界者·自然守护Mini",
			Series:           "自然守护",
			Category:         "home",
			Price:            1299,
			OriginalPrice:    1599,
			Discount:         "19%",
			CADRPM25:         200,
			CADRFormaldehyde: 60,
			ApplicableArea:   "14-24㎡",
			AreaMin:          14,
			AreaMax:          24,
			NoiseRange:       "25-48dB",
			Power:            "6-35W",
			Dimensions:       "220×220×380mm",
			Weight:           "3.2kg",
			FilterLife:       "6-8个月",
			Features: []string{
				"HEPA H12高效滤网",
				"三档风速调节",
				"静音睡眠模式",
				"滤芯更换提醒",
				"触控操作面板",
			},
			Highlights: []Highlight{
				{Icon: "shield", Title: "H12级过滤", Desc: "99.5%过滤效率"},
				{Icon: "volume-x", Title: "超静音", Desc: "最低25dB"},
				{Icon: "zap", Title: "节能省电", Desc: "最低6W功耗"},
			},
			SuitableFor: []string{"bedroom", "nursery", "office", "small_room"},
			Problems:    []string{"pm25", "dust", "allergen"},
			UserGroups:  []string{"general", "baby"},
			Images: []string{
				"/static/images/products/mini-1.png",
				"/static/images/products/mini-2.png",
				"/static/images/products/mini-3.png",
			},
			MainImage:  "/static/images/products/mini.png",
			Rating:     4.7,
			Reviews:    2356,
			Sales:      15680,
			Tags:       []string{"入门首选", "静音设计", "高性价比"},
			Badge:      "热销",
			BadgeColor: "orange",
		},
		{
			ID:               "pro-01",
			Name:             "净界者·森林呼吸Pro",
			Series:           "森林呼吸",
			Category:         "home",
			Price:            2999,
			OriginalPrice:    3599,
			Discount:         "17%",
			CADRPM25:         450,
			CADRFormaldehyde: 200,
			ApplicableArea:   "31-54㎡",
			AreaMin:          31,
			AreaMax:          54,
			NoiseRange:       "28-55dB",
			Power:            "8-58W",
			Dimensions:       "280×280×520mm",
			Weight:           "5.8kg",
			FilterLife:       "8-12个月",
			Features: []string{
				"HEPA H13医疗级滤网",
				"活性炭除醛滤网",
				"甲醛催化分解技术",
				"激光PM2.5传感器",
				"智能空气质量显示",
				"APP远程控制",
				"语音助手支持",
				"定时开关机",
			},
			Highlights: []Highlight{
				{Icon: "shield-check", Title: "H13医疗级", Desc: "99.97%过滤效率"},
				{Icon: "wind", Title: "除醛专家", Desc: "CADR 200m³/h"},
				{Icon: "smartphone", Title: "智能互联", Desc: "APP+语音控制"},
			},
			SuitableFor: []string{"living", "bedroom", "office"},
			Problems:    []string{"pm25", "formaldehyde", "odor", "allergen"},
			UserGroups:  []string{"general", "allergy", "pet"},
			Images: []string{
				"/static/images/products/pro-1.png",
				"/static/images/products/pro-2.png",
				"/static/images/products/pro-3.png",
			},
			MainImage:  "/static/images/products/pro.png",
			Rating:     4.8,
			Reviews:    5621,
			Sales:      28950,
			Tags:       []string{"销量冠军", "除醛专家", "智能互联"},
			Badge:      "爆款",
			BadgeColor: "red",
		},
		{
			ID:               "max-01",
			Name:             "净界者·清新之风Max",
			Series:           "清新之风",
			Category:         "home",
			Price:            5999,
			OriginalPrice:    7299,
			Discount:         "18%",
			CADRPM25:         800,
			CADRFormaldehyde: 400,
			ApplicableArea:   "56-96㎡",
			AreaMin:          56,
			AreaMax:          96,
			NoiseRange:       "30-58dB",
			Power:            "10-75W",
			Dimensions:       "350×350×680mm",
			Weight:           "9.5kg",
			FilterLife:       "12-18个月",
			Features: []string{
				"HEPA H13+双重活性炭",
				"UV-C紫外线消毒",
				"负离子净化",
				"甲醛数显监测",
				"全屋空气互联",
				"多房间联动控制",
				"空气质量报告",
				"滤芯智能监测",
			},
			Highlights: []Highlight{
				{Icon: "home", Title: "全屋净化", Desc: "CADR 800m³/h"},
				{Icon: "sun", Title: "UV消毒", Desc: "99.9%杀菌率"},
				{Icon: "activity", Title: "甲醛数显", Desc: "实时精准监测"},
			},
			SuitableFor: []string{"living", "whole_house", "villa"},
			Problems:    []string{"pm25", "formaldehyde", "bacteria", "odor", "allergen", "dust"},
			UserGroups:  []string{"general", "baby", "elderly", "pregnant", "respiratory"},
			Images: []string{
				"/static/images/products/max-1.png",
				"/static/images/products/max-2.png",
				"/static/images/products/max-3.png",
			},
			MainImage:  "/static/images/products/max.png",
			Rating:     4.9,
			Reviews:    3892,
			Sales:      12350,
			Tags:       []string{"旗舰之选", "全能净化", "医疗级"},
			Badge:      "旗舰",
			BadgeColor: "purple",
		},
		{
			ID:               "uv-01",
			Name:             "净界者·紫光卫士",
			Series:           "紫光卫士",
			Category:         "home",
			Price:            3999,
			OriginalPrice:    4599,
			Discount:         "13%",
			CADRPM25:         380,
			CADRFormaldehyde: 150,
			ApplicableArea:   "26-46㎡",
			AreaMin:          26,
			AreaMax:          46,
			NoiseRange:       "26-52dB",
			Power:            "8-50W",
			Dimensions:       "260×260×480mm",
			Weight:           "5.2kg",
			FilterLife:       "8-12个月",
			Features: []string{
				"HEPA H13医疗级滤网",
				"UV-C深紫外消毒",
				"等离子杀菌技术",
				"病毒过滤认证",
				"儿童安全锁",
				"零臭氧设计",
				"医疗机构认证",
			},
			Highlights: []Highlight{
				{Icon: "zap", Title: "UV-C消毒", Desc: "深紫外杀菌"},
				{Icon: "shield", Title: "医疗认证", Desc: "专业级防护"},
				{Icon: "baby", Title: "母婴安全", Desc: "零臭氧设计"},
			},
			SuitableFor: []string{"nursery", "bedroom", "hospital", "elderly_room"},
			Problems:    []string{"bacteria", "pm25", "allergen", "virus"},
			UserGroups:  []string{"baby", "elderly", "pregnant", "respiratory"},
			Images: []string{
				"/static/images/products/uv-1.png",
				"/static/images/products/uv-2.png",
				"/static/images/products/uv-3.png",
			},
			MainImage:  "/static/images/products/uv.png",
			Rating:     4.8,
			Reviews:    1876,
			Sales:      8920,
			Tags:       []string{"杀菌专家", "母婴优选", "医疗级"},
			Badge:      "医疗级",
			BadgeColor: "blue",
		},
		{
			ID:               "car-01",
			Name:             "净界者·车载清风",
			Series:           "车载系列",
			Category:         "car",
			Price:            699,
			OriginalPrice:    899,
			Discount:         "22%",
			CADRPM25:         30,
			CADRFormaldehyde: 15,
			ApplicableArea:   "车内空间",
			NoiseRange:       "≤35dB",
			Power:            "5W",
			Dimensions:       "80×80×180mm",
			Weight:           "0.5kg",
			FilterLife:       "3-6个月",
			Features: []string{
				"HEPA H11滤网",
				"活性炭除味",
				"负离子清新",
				"USB供电",
				"便携设计",
				"车载支架",
			},
			Highlights: []Highlight{
				{Icon: "car", Title: "车载专用", Desc: "完美适配"},
				{Icon: "wind", Title: "快速净化", Desc: "10分钟见效"},
				{Icon: "plug", Title: "USB供电", Desc: "即插即用"},
			},
			SuitableFor: []string{"car"},
			Problems:    []string{"odor", "pm25", "formaldehyde"},
			UserGroups:  []string{"general", "driver"},
			Images: []string{
				"/static/images/products/car-1.png",
				"/static/images/products/car-2.png",
			},
			MainImage:  "/static/images/products/car.png",
			Rating:     4.6,
			Reviews:    4521,
			Sales:      35680,
			Tags:       []string{"车载必备", "新车除味", "便携小巧"},
			Badge:      "热销",
			BadgeColor: "orange",
		},
		{
			ID:            "filter-hepa-01",
			Name:          "原装HEPA H13滤芯",
			Series:        "耗材配件",
			Category:      "accessory",
			Price:         299,
			OriginalPrice: 349,
			Discount:      "14%",
			FilterLife:    "8-12个月",
			Features: []string{
				"H13级HEPA滤网",
				"99.97%过滤效率",
				"原装品质保证",
			},
			ApplicableModels: []string{"pro-01", "max-01", "uv-01"},
			MainImage:        "/static/images/products/filter-hepa.png",
			Rating:           4.9,
			Reviews:          2156,
			Sales:            18920,
			Tags:             []string{"原装正品", "高效过滤"},
		},
		{
			ID:            "filter-carbon-01",
			Name:          "活性炭除醛滤芯",
			Series:        "耗材配件",
			Category:      "accessory",
			Price:         199,
			OriginalPrice: 249,
			Discount:      "20%",
			FilterLife:    "6-8个月",
			Features: []string{
				"椰壳活性炭",
				"高效除醛除味",
				"大容量吸附",
			},
			ApplicableModels: []string{"pro-01", "max-01"},
			MainImage:        "/static/images/products/filter-carbon.png",
			Rating:           4.8,
			Reviews:          1823,
			Sales:            15680,
			Tags:             []string{"除醛专用", "原装正品"},
		},
	}
}

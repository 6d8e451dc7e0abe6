package profile

// DefaultTemplate 是注册表中的第一个模板，也是未知模板 ID 的回落目标。
const DefaultTemplate = "template1"

// Default 返回会话启动时使用的示例档案。
// 各字段 ID 固定，前端编辑操作以 ID 为准进行增删改。
func Default() Profile {
	return Profile{
		Header: Header{
			Enabled: true,
			Text:    "Biodata",
			Icon:    "icon-om",
		},
		Overview: Overview{
			Enabled: true,
			Title:   "About Me",
			Text:    "A short introduction about yourself, your values and what you are looking for.",
		},
		Template: DefaultTemplate,
		Customizations: Customizations{
			ThemeID:        "classic",
			ImagePlacement: PlaceRight,
			ImageShape:     ShapeCircle,
		},
		Sections: []Section{
			{
				ID:      SectionPersonal,
				Title:   "Personal Details",
				Enabled: true,
				Fields: []Field{
					{ID: "name", Label: "Name", Value: "Your Name", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "dob", Label: "Date of Birth", Value: "01 Jan 1995", Type: FieldDate, Enabled: true, ShowLabel: true},
					{ID: "birth-place", Label: "Place of Birth", Value: "Mumbai", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "height", Label: "Height", Value: "5' 8\"", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "religion", Label: "Religion", Value: "Hindu", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "occupation", Label: "Occupation", Value: "Software Engineer", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "education", Label: "Education", Value: "B.Tech, Computer Science", Type: FieldText, Enabled: true, ShowLabel: true},
				},
			},
			{
				ID:      "family",
				Title:   "Family Details",
				Enabled: true,
				Fields: []Field{
					{ID: "father", Label: "Father's Name", Value: "Father's Name", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "mother", Label: "Mother's Name", Value: "Mother's Name", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "siblings", Label: "Siblings", Value: "One younger sister", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "family-values", Label: "Family Values", Value: "Moderate, well-settled family.\nFather is a retired teacher.", Type: FieldTextarea, Enabled: true, ShowLabel: true},
				},
			},
			{
				ID:      SectionContact,
				Title:   "Contact Details",
				Enabled: true,
				Fields: []Field{
					{ID: "phone", Label: "Phone", Value: "+91 98765 43210", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "email", Label: "Email", Value: "hello@example.com", Type: FieldText, Enabled: true, ShowLabel: true},
					{ID: "address", Label: "Address", Value: "123, Residency Road,\nMumbai, Maharashtra", Type: FieldTextarea, Enabled: true, ShowLabel: true},
				},
			},
		},
	}
}

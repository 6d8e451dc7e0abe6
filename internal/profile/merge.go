package profile

import (
	"encoding/json"
	"fmt"
)

// MergeOverDefaults 把存储的快照浅合并到内置默认档案之上。
// 顶层键与 customizations 内的键：存储中存在则覆盖，缺失则保留默认，
// 以便跨版本新增字段时旧快照仍可加载；嵌套的数组/对象整体取自存储。
func MergeOverDefaults(raw []byte) (Profile, error) {
	p := Default()
	if len(raw) == 0 {
		return p, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return Default(), fmt.Errorf("decode stored profile: %w", err)
	}

	if v, ok := top["header"]; ok {
		p.Header = Header{}
		if err := json.Unmarshal(v, &p.Header); err != nil {
			return Default(), fmt.Errorf("decode header: %w", err)
		}
	}
	if v, ok := top["overview"]; ok {
		p.Overview = Overview{}
		if err := json.Unmarshal(v, &p.Overview); err != nil {
			return Default(), fmt.Errorf("decode overview: %w", err)
		}
	}
	if v, ok := top["photo"]; ok {
		if err := json.Unmarshal(v, &p.Photo); err != nil {
			return Default(), fmt.Errorf("decode photo: %w", err)
		}
	}
	if v, ok := top["sections"]; ok {
		p.Sections = nil
		if err := json.Unmarshal(v, &p.Sections); err != nil {
			return Default(), fmt.Errorf("decode sections: %w", err)
		}
	}
	if v, ok := top["template"]; ok {
		if err := json.Unmarshal(v, &p.Template); err != nil {
			return Default(), fmt.Errorf("decode template: %w", err)
		}
	}
	if v, ok := top["customizations"]; ok {
		merged, err := mergeCustomizations(p.Customizations, v)
		if err != nil {
			return Default(), err
		}
		p.Customizations = merged
	}

	return p, nil
}

// mergeCustomizations 按键合并：只覆盖存储中出现过的样式项。
func mergeCustomizations(base Customizations, raw json.RawMessage) (Customizations, error) {
	var stored struct {
		ThemeID         *string         `json:"theme_id"`
		BackgroundColor *string         `json:"background_color"`
		PrimaryColor    *string         `json:"primary_color"`
		TextColor       *string         `json:"text_color"`
		FontFamily      *FontFamily     `json:"font_family"`
		FontSize        *int            `json:"font_size"`
		ImagePlacement  *ImagePlacement `json:"image_placement"`
		ImageShape      *ImageShape     `json:"image_shape"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return base, fmt.Errorf("decode customizations: %w", err)
	}

	if stored.ThemeID != nil {
		base.ThemeID = *stored.ThemeID
	}
	if stored.BackgroundColor != nil {
		base.BackgroundColor = *stored.BackgroundColor
	}
	if stored.PrimaryColor != nil {
		base.PrimaryColor = *stored.PrimaryColor
	}
	if stored.TextColor != nil {
		base.TextColor = *stored.TextColor
	}
	if stored.FontFamily != nil {
		base.FontFamily = *stored.FontFamily
	}
	if stored.FontSize != nil {
		base.FontSize = *stored.FontSize
	}
	if stored.ImagePlacement != nil {
		base.ImagePlacement = *stored.ImagePlacement
	}
	if stored.ImageShape != nil {
		base.ImageShape = *stored.ImageShape
	}
	return base, nil
}

// ValidateShape 做最基本的形状校验：模板非空、ID 全局唯一。
// 更细的业务校验不在本系统范围内。
func ValidateShape(p *Profile) error {
	if p.Template == "" {
		return fmt.Errorf("template id is required")
	}
	seenSection := make(map[string]struct{}, len(p.Sections))
	for _, s := range p.Sections {
		if s.ID == "" {
			return fmt.Errorf("section with empty id")
		}
		if _, dup := seenSection[s.ID]; dup {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seenSection[s.ID] = struct{}{}

		seenField := make(map[string]struct{}, len(s.Fields))
		for _, f := range s.Fields {
			if f.ID == "" {
				return fmt.Errorf("section %q: field with empty id", s.ID)
			}
			if _, dup := seenField[f.ID]; dup {
				return fmt.Errorf("section %q: duplicate field id %q", s.ID, f.ID)
			}
			seenField[f.ID] = struct{}{}
		}
	}
	return nil
}

package profile

// 编辑操作全部走写时复制：每个操作返回一份深拷贝出来的新快照，
// 原快照保持不变，预览渲染与持久化观察者因此永远不会读到半改状态。

// Clone 返回档案的深拷贝。
func (p Profile) Clone() Profile {
	out := p
	out.Sections = make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		cs := s
		cs.Fields = make([]Field, len(s.Fields))
		copy(cs.Fields, s.Fields)
		out.Sections[i] = cs
	}
	return out
}

// WithTemplate 返回切换了模板的新快照。
func (p Profile) WithTemplate(id string) Profile {
	out := p.Clone()
	out.Template = id
	return out
}

// WithCustomizations 返回替换了样式选择的新快照。
func (p Profile) WithCustomizations(c Customizations) Profile {
	out := p.Clone()
	out.Customizations = c
	return out
}

// WithPhoto 返回替换了照片引用的新快照，ref 为空表示移除照片。
func (p Profile) WithPhoto(ref string) Profile {
	out := p.Clone()
	out.Photo = ref
	return out
}

// MoveSection 把 from 位置的 Section 移到 to 位置，只改变顺序，
// 不改变任何 ID、开关或字段内容。下标越界时原样返回。
func (p Profile) MoveSection(from, to int) Profile {
	out := p.Clone()
	if from < 0 || from >= len(out.Sections) || to < 0 || to >= len(out.Sections) || from == to {
		return out
	}
	s := out.Sections[from]
	out.Sections = append(out.Sections[:from], out.Sections[from+1:]...)
	rest := append(out.Sections[:to:to], s)
	out.Sections = append(rest, out.Sections[to:]...)
	return out
}

// MoveField 在指定 Section 内把 from 位置的字段移到 to 位置。
func (p Profile) MoveField(sectionID string, from, to int) Profile {
	out := p.Clone()
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		fields := out.Sections[i].Fields
		if from < 0 || from >= len(fields) || to < 0 || to >= len(fields) || from == to {
			return out
		}
		f := fields[from]
		fields = append(fields[:from], fields[from+1:]...)
		rest := append(fields[:to:to], f)
		out.Sections[i].Fields = append(rest, fields[to:]...)
		return out
	}
	return out
}

// ToggleSection 翻转 Section 的启用状态（软删除语义，内容保留）。
func (p Profile) ToggleSection(id string) Profile {
	out := p.Clone()
	for i := range out.Sections {
		if out.Sections[i].ID == id {
			out.Sections[i].Enabled = !out.Sections[i].Enabled
			break
		}
	}
	return out
}

// ToggleField 翻转字段的启用状态。
func (p Profile) ToggleField(sectionID, fieldID string) Profile {
	out := p.Clone()
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		for j := range out.Sections[i].Fields {
			if out.Sections[i].Fields[j].ID == fieldID {
				out.Sections[i].Fields[j].Enabled = !out.Sections[i].Fields[j].Enabled
				return out
			}
		}
	}
	return out
}

// UpsertField 按 ID 更新字段，不存在则追加到 Section 末尾。
func (p Profile) UpsertField(sectionID string, f Field) Profile {
	out := p.Clone()
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		for j := range out.Sections[i].Fields {
			if out.Sections[i].Fields[j].ID == f.ID {
				out.Sections[i].Fields[j] = f
				return out
			}
		}
		out.Sections[i].Fields = append(out.Sections[i].Fields, f)
		return out
	}
	return out
}

// RemoveField 按 ID 删除字段（硬删除，区别于 Toggle 的软删除）。
func (p Profile) RemoveField(sectionID, fieldID string) Profile {
	out := p.Clone()
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		fields := out.Sections[i].Fields
		for j := range fields {
			if fields[j].ID == fieldID {
				out.Sections[i].Fields = append(fields[:j], fields[j+1:]...)
				return out
			}
		}
	}
	return out
}

// RenameSection 修改 Section 标题。
func (p Profile) RenameSection(id, title string) Profile {
	out := p.Clone()
	for i := range out.Sections {
		if out.Sections[i].ID == id {
			out.Sections[i].Title = title
			break
		}
	}
	return out
}

package model

// Model is the JSON description of a shape's geometry.
//
//	{
//	  "parent": "cube",
//	  "mode": "solid-indexed",
//	  "size": 3,
//	  "vertices": [[-1, -1, -1], ...],
//	  "colors": [[0.8, 0.1, 0.1], ...],
//	  "indices": [0, 1, 2, ...]
//	}
//
// A child inherits every field it leaves empty from its parent.
type Model struct {
	Parent   string       `json:"parent"`
	Mode     string       `json:"mode"`
	Size     int32        `json:"size"`
	Vertices [][3]float32 `json:"vertices"`
	Colors   [][3]float32 `json:"colors"`
	Color    *[3]float32  `json:"color"`
	Indices  []uint32     `json:"indices"`
}

func (m *Model) inherit(parent *Model) {
	if m.Mode == "" {
		m.Mode = parent.Mode
	}
	if m.Size == 0 {
		m.Size = parent.Size
	}
	if len(m.Vertices) == 0 {
		m.Vertices = parent.Vertices
	}
	if len(m.Colors) == 0 && m.Color == nil {
		m.Colors = parent.Colors
		m.Color = parent.Color
	}
	if len(m.Indices) == 0 {
		m.Indices = parent.Indices
	}
}

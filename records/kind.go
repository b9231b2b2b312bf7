package records

// 记录类型字节
const (
	TagLine byte = iota + 1
	TagCircle
	TagArc
	TagPoint
	TagPolyline
	TagEllipse
	TagSolid
	TagText
	TagMText
	TagDimension
	TagLeader
	TagTolerance
	TagTable
	TagBlock
	TagInsert
	TagAttrib
	TagXRef
	TagWipeout
	Tag3DFace
	TagPolyfaceMesh
	TagMesh
	Tag3DSolid
	TagSurface
	TagBody
	TagRegion
)

var names = map[byte]string{
	TagLine:         "LINE",
	TagCircle:       "CIRCLE",
	TagArc:          "ARC",
	TagPoint:        "POINT",
	TagPolyline:     "POLYLINE",
	TagEllipse:      "ELLIPSE",
	TagSolid:        "SOLID",
	TagText:         "TEXT",
	TagMText:        "MTEXT",
	TagDimension:    "DIMENSION",
	TagLeader:       "LEADER",
	TagTolerance:    "TOLERANCE",
	TagTable:        "TABLE",
	TagBlock:        "BLOCK",
	TagInsert:       "INSERT",
	TagAttrib:       "ATTRIB",
	TagXRef:         "XREF",
	TagWipeout:      "WIPEOUT",
	Tag3DFace:       "3DFACE",
	TagPolyfaceMesh: "POLYFACE_MESH",
	TagMesh:         "MESH",
	Tag3DSolid:      "3DSOLID",
	TagSurface:      "SURFACE",
	TagBody:         "BODY",
	TagRegion:       "REGION",
}

// Name 记录类型名，未知类型返回空串
func Name(tag byte) string {
	return names[tag]
}

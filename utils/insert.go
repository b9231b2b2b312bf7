package utils

import (
	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
)

// CombineInserts 合并嵌套块的变换，child 的插入点是相对父块基点的坐标
func CombineInserts(parent, child *entities.Insert) *entities.Insert {
	return &entities.Insert{
		BaseEntity: child.BaseEntity,
		BlockName:  child.BlockName,
		// 旋转叠加
		Rotation: parent.Rotation + child.Rotation,
		// 缩放叠加
		Scale: core.Point{
			X: parent.Scale.X * child.Scale.X,
			Y: parent.Scale.Y * child.Scale.Y,
			Z: parent.Scale.Z * child.Scale.Z,
		},
		// 插入点需要经过父块的 缩放 -> 旋转 -> 平移 变换
		InsertionPoint: TransformPoint(child.InsertionPoint, parent),
	}
}

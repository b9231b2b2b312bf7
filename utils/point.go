package utils

import (
	"math"

	"github.com/zooyer/cad2pdf/core"
	"github.com/zooyer/cad2pdf/entities"
)

// TransformPoint 将块内局部坐标点经过 Insert 变换转换到父级/世界坐标
func TransformPoint(p core.Point, ins *entities.Insert) core.Point {
	rad := ins.Rotation * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)

	// 1. 缩放
	tx := p.X * ins.Scale.X
	ty := p.Y * ins.Scale.Y

	// 2. 旋转
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 平移
	return core.Point{
		X: rx + ins.InsertionPoint.X,
		Y: ry + ins.InsertionPoint.Y,
		Z: p.Z*ins.Scale.Z + ins.InsertionPoint.Z,
	}
}

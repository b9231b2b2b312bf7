package utils

import (
	"github.com/zooyer/cad2pdf/entities"
)

// GetAttrs 属性标签到属性值的映射，重复标签取最后一个
func GetAttrs(ins *entities.Insert) map[string]string {
	var attrs = make(map[string]string, len(ins.Attributes))
	for _, a := range ins.Attributes {
		attrs[a.Tag] = a.Text
	}

	return attrs
}

func GetAttr(ins *entities.Insert, key string) string {
	return GetAttrs(ins)[key]
}

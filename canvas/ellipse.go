package canvas

import "math"

// curve 三次贝塞尔曲线段
type curve struct {
	x0, y0, x1, y1, x2, y2, x3, y3 float64
}

// ellipseCurves 把椭圆弧拆成每段不超过 90° 的贝塞尔曲线。
// end 小于 start 时按逆时针绕过 2π
func ellipseCurves(cx, cy, rx, ry, rotation, start, end float64) []curve {
	for end <= start {
		end += 2 * math.Pi
	}
	if end-start > 2*math.Pi {
		end = start + 2*math.Pi
	}

	cos, sin := math.Cos(rotation), math.Sin(rotation)
	point := func(t float64) (float64, float64) {
		a, b := rx*math.Cos(t), ry*math.Sin(t)
		return cx + a*cos - b*sin, cy + a*sin + b*cos
	}
	tangent := func(t float64) (float64, float64) {
		a, b := -rx*math.Sin(t), ry*math.Cos(t)
		return a*cos - b*sin, a*sin + b*cos
	}

	n := max(int(math.Ceil((end-start)/(math.Pi/2)-1e-9)), 1)
	step := (end - start) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	curves := make([]curve, 0, n)
	for i := 0; i < n; i++ {
		t0 := start + float64(i)*step
		t1 := t0 + step

		x0, y0 := point(t0)
		x3, y3 := point(t1)
		dx0, dy0 := tangent(t0)
		dx1, dy1 := tangent(t1)

		curves = append(curves, curve{
			x0: x0, y0: y0,
			x1: x0 + k*dx0, y1: y0 + k*dy0,
			x2: x3 - k*dx1, y2: y3 - k*dy1,
			x3: x3, y3: y3,
		})
	}
	return curves
}

// fullTurn 参数范围是否构成整圈
func fullTurn(start, end float64) bool {
	d := math.Mod(end-start, 2*math.Pi)
	return math.Abs(d) < 1e-9 || math.Abs(d-2*math.Pi) < 1e-9 || math.Abs(d+2*math.Pi) < 1e-9
}

package ebitenhost

import "testing"

func TestPointerClick(t *testing.T) {
	tests := []struct {
		name    string
		samples [][3]float64 // x, y, pressed (0/1)
		click   bool
		x, y    float64
	}{
		{"press release", [][3]float64{{10, 10, 1}, {10, 10, 0}}, true, 10, 10},
		{"jitter inside dead zone", [][3]float64{{10, 10, 1}, {12, 13, 1}, {13, 12, 0}}, true, 10, 10},
		{"drag", [][3]float64{{10, 10, 1}, {30, 10, 1}, {30, 10, 0}}, false, 0, 0},
		{"drag back to start", [][3]float64{{10, 10, 1}, {30, 10, 1}, {10, 10, 0}}, false, 0, 0},
		{"hover only", [][3]float64{{10, 10, 0}, {20, 20, 0}}, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pointer{deadZone: DefaultClickDeadZone}
			var clicked bool
			var cx, cy float64
			for _, s := range tt.samples {
				if x, y, ok := p.update(s[0], s[1], s[2] == 1); ok {
					clicked, cx, cy = true, x, y
				}
			}
			if clicked != tt.click {
				t.Fatalf("click = %v, want %v", clicked, tt.click)
			}
			if clicked && (cx != tt.x || cy != tt.y) {
				t.Errorf("click at (%v, %v), want (%v, %v)", cx, cy, tt.x, tt.y)
			}
		})
	}
}

func TestPointerResetsAfterDrag(t *testing.T) {
	p := pointer{deadZone: DefaultClickDeadZone}
	p.update(0, 0, true)
	p.update(50, 0, true)
	p.update(50, 0, false)

	p.update(5, 5, true)
	if _, _, ok := p.update(5, 5, false); !ok {
		t.Error("click after a drag was not recognised")
	}
}

func TestInjectQueue(t *testing.T) {
	var q injectQueue
	q.click(3, 4)
	q.click(7, 8)

	p := pointer{deadZone: DefaultClickDeadZone}
	var clicks [][2]float64
	for {
		evt, ok := q.pop()
		if !ok {
			break
		}
		if x, y, ok := p.update(evt.x, evt.y, evt.pressed); ok {
			clicks = append(clicks, [2]float64{x, y})
		}
	}
	if len(clicks) != 2 || clicks[0] != [2]float64{3, 4} || clicks[1] != [2]float64{7, 8} {
		t.Errorf("clicks = %v", clicks)
	}
	if len(q) != 0 {
		t.Errorf("queue not drained: %d left", len(q))
	}
}

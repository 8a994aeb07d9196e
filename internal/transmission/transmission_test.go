package transmission

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestTransmission_KnownValues(t *testing.T) {
	for _, path := range []float64{PathLength10mm, PathLength5mm} {
		if got := Transmission(Absorbance(0, path)); got != 100 {
			t.Fatalf("path %v: T(0)=%v", path, got)
		}
	}
	if a := Absorbance(12.7, PathLength10mm); a != 1 {
		t.Fatalf("A(12.7)=%v", a)
	}
	if got := Transmission(Absorbance(12.7, PathLength10mm)); math.Abs(got-10) > 1e-12 {
		t.Fatalf("T(12.7)=%v", got)
	}
}

func TestAbsorbance_HalfPath(t *testing.T) {
	for srm := 0.0; srm <= MaxSRM; srm += 0.5 {
		full := Absorbance(srm, PathLength10mm)
		half := Absorbance(srm, PathLength5mm)
		if half != full/2 {
			t.Fatalf("srm %v: 5mm=%v 10mm=%v", srm, half, full)
		}
	}
}

func TestDefaultCurves(t *testing.T) {
	curves := DefaultCurves()
	if len(curves) != 2 {
		t.Fatalf("curves=%d", len(curves))
	}
	for _, c := range curves {
		if len(c.Points) != MaxSRM+1 {
			t.Fatalf("%s: points=%d", c.Label, len(c.Points))
		}
		for i, p := range c.Points {
			if p.X != float64(i) {
				t.Fatalf("%s: x[%d]=%v", c.Label, i, p.X)
			}
			if i > 0 && p.Y >= c.Points[i-1].Y {
				t.Fatalf("%s: not decreasing at %d", c.Label, i)
			}
		}
	}
	// Halving the path doubles the log attenuation: T5^2 == T10 * 100.
	for i := range curves[0].Points {
		t10 := curves[0].Points[i].Y
		t5 := curves[1].Points[i].Y
		if math.Abs(t5*t5-t10*100) > 1e-9*math.Max(1, t10*100) {
			t.Fatalf("srm %d: t10=%v t5=%v", i, t10, t5)
		}
	}
}

func TestNewCurve_Empty(t *testing.T) {
	c := NewCurve("zero", PathLength10mm, 0)
	if len(c.Points) != 1 || c.Points[0].Y != 100 {
		t.Fatalf("points=%v", c.Points)
	}
}

func TestFigure_WriteTo(t *testing.T) {
	fig, err := NewFigure(DefaultCurves())
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	var buf bytes.Buffer
	if _, err := fig.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty png")
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("not a png")
	}
}

func TestFigure_Save(t *testing.T) {
	fig, err := NewFigure(DefaultCurves())
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	out := filepath.Join(t.TempDir(), DefaultOutput)
	if err := fig.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) == 0 || !bytes.HasPrefix(b, pngMagic) {
		t.Fatalf("bad output, %d bytes", len(b))
	}
}

func TestFigure_SaveMissingDir(t *testing.T) {
	fig, err := NewFigure(DefaultCurves())
	if err != nil {
		t.Fatalf("NewFigure: %v", err)
	}
	out := filepath.Join(t.TempDir(), "missing", DefaultOutput)
	if err := fig.Save(out); err == nil {
		t.Fatalf("expected error")
	}
}

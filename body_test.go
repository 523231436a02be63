package physics2d

import (
	"math"
	"testing"
)

func TestNewRegularPolygonBodyInvariants(t *testing.T) {
	body := NewRegularPolygonBody(6, 2, 4)

	if len(body.verticesLocal) != 6 {
		t.Fatalf("len(verticesLocal) = %d, want 6", len(body.verticesLocal))
	}
	if body.isStatic {
		t.Fatal("mass > 0 should not be static")
	}
	if math.Abs(body.inverseMass-0.25) > 1e-9 {
		t.Errorf("inverseMass = %v, want 0.25", body.inverseMass)
	}
	if body.inertia <= 0 || body.inverseInertia <= 0 {
		t.Errorf("expected positive inertia/inverseInertia, got %v/%v", body.inertia, body.inverseInertia)
	}
}

func TestStaticBodyHasZeroInverses(t *testing.T) {
	body := NewRegularPolygonBody(4, 1, 0)

	if !body.isStatic {
		t.Fatal("mass 0 should be static")
	}
	if body.inverseMass != 0 {
		t.Errorf("inverseMass = %v, want 0", body.inverseMass)
	}
	if body.inverseInertia != 0 {
		t.Errorf("inverseInertia = %v, want 0", body.inverseInertia)
	}
}

func TestGenerateRegularPolygonWindsCCW(t *testing.T) {
	verts := generateRegularPolygon(5, 3)

	var signedArea float64
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		signedArea += a.X()*b.Y() - b.X()*a.Y()
	}

	if signedArea <= 0 {
		t.Errorf("signed area = %v, want > 0 (CCW winding)", signedArea)
	}
}

func TestGenerateRegularPolygonRejectsTooFewSides(t *testing.T) {
	if verts := generateRegularPolygon(2, 1); verts != nil {
		t.Errorf("expected nil for sides < 3, got %v", verts)
	}
}

func TestSetBoxVerticesWindsCCWAndRebuildsCache(t *testing.T) {
	body := NewRigidBody()
	body.SnapTo(Vec2{1, 1})
	SetBoxVertices(body, 2, 4)

	if len(body.verticesLocal) != 4 {
		t.Fatalf("len(verticesLocal) = %d, want 4", len(body.verticesLocal))
	}
	if body.dirty {
		t.Error("SetBoxVertices should rebuild the cache immediately")
	}

	var signedArea float64
	verts := body.verticesLocal
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		signedArea += a.X()*b.Y() - b.X()*a.Y()
	}
	if signedArea <= 0 {
		t.Errorf("signed area = %v, want > 0 (CCW winding)", signedArea)
	}
}

func TestBodyMutatorsMarkDirty(t *testing.T) {
	body := NewRegularPolygonBody(4, 1, 1)
	refreshWorldSpace(body)

	body.Move(Vec2{1, 0})
	if !body.dirty {
		t.Error("Move should mark the cache dirty")
	}

	refreshWorldSpace(body)
	body.Rotate(0.1)
	if !body.dirty {
		t.Error("Rotate should mark the cache dirty")
	}

	refreshWorldSpace(body)
	body.SnapTo(Vec2{5, 5})
	if !body.dirty {
		t.Error("SnapTo should mark the cache dirty")
	}
}

func TestBoxInertiaMatchesStandardFormula(t *testing.T) {
	got := BoxInertia(2, 4, 6)
	want := 2.0 * (4*4 + 6*6) / 12
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BoxInertia = %v, want %v", got, want)
	}
	if got := BoxInertia(0, 4, 6); got != 0 {
		t.Errorf("BoxInertia with zero mass = %v, want 0", got)
	}
}

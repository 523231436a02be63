package physics2d

import "math"

// ==================== SHAPE DESCRIPTOR ====================

// ShapeKind tags how a body's vertices were generated. The core treats
// every body as a convex polygon regardless of this tag — it exists only
// so a renderer or scene builder can tell a circle-approximation from a
// hand-authored polygon; narrow-phase and the resolver never switch on it.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRectangle
	ShapePolygon
)

// Colour is a presentation-only RGB triple. The core never reads it; it
// exists so a renderer sharing a RigidBody has somewhere to look.
type Colour struct {
	R, G, B float64
}

// DefaultColour matches the original engine's default body tint.
var DefaultColour = Colour{R: 255, G: 255, B: 255}

// ==================== RIGID BODY ====================

// RigidBody is a value-owned physical entity. The World holds a sequence
// of these by value; a Manifold carries the index of a body into that
// sequence rather than a pointer, and the resolver only holds pointers into
// it while resolving a single pair, so that the sequence remains free to be
// copied or reallocated between steps.
type RigidBody struct {
	Kind   ShapeKind
	Sides  int
	Radius float64

	position            Vec2
	rotation            float64
	linearVelocity      Vec2
	linearAcceleration  Vec2
	angularVelocity     float64
	angularAcceleration float64
	force               Vec2

	mass            float64
	inverseMass     float64
	inertia         float64
	inverseInertia  float64
	density         float64
	area            float64
	restitution     float64
	staticFriction  float64
	dynamicFriction float64
	isStatic        bool

	verticesLocal []Vec2
	verticesWorld []Vec2
	dirty         bool

	Colour Colour
}

// NewRigidBody returns a body with the default friction coefficients
// (0.2 static, 0.8 dynamic), DefaultColour and a stale world-space cache;
// mass, inertia and their inverses are left at zero and verticesLocal is
// empty. The caller must populate
// geometry (SetBoxVertices, or by constructing verticesLocal directly) and
// inertial parameters before the body is usable by the World.
func NewRigidBody() *RigidBody {
	return &RigidBody{
		restitution:     0,
		staticFriction:  0.2,
		dynamicFriction: 0.8,
		Colour:          DefaultColour,
		dirty:           true,
	}
}

// NewRegularPolygonBody builds a body whose verticesLocal are a regular
// n-gon of the given radius, with mass, inertia, inverseMass and
// inverseInertia derived from n, radius and mass. Circles are realised as
// many-sided regular polygons: pass a large Sides to approximate one.
func NewRegularPolygonBody(sides int, radius, mass float64) *RigidBody {
	body := NewRigidBody()
	body.Kind = ShapeCircle
	body.Sides = sides
	body.Radius = radius
	body.mass = mass
	body.isStatic = mass <= 0
	body.verticesLocal = generateRegularPolygon(sides, radius)
	body.inertia = regularPolygonInertia(sides, mass, radius)
	body.inverseInertia = safeInverse(body.inertia)
	body.inverseMass = computeInverseMass(mass, body.isStatic)
	body.area = math.Pi * radius * radius
	body.dirty = true
	return body
}

// SetBoxVertices sets body's local vertices to an axis-aligned width x
// height rectangle centred on its centre of mass, wound CCW starting at
// the bottom-left corner, and immediately rebuilds verticesWorld from the
// body's current position and rotation.
func SetBoxVertices(body *RigidBody, width, height float64) {
	halfW := width / 2
	halfH := height / 2

	body.Kind = ShapeRectangle
	body.verticesLocal = []Vec2{
		{-halfW, -halfH},
		{halfW, -halfH},
		{halfW, halfH},
		{-halfW, halfH},
	}
	body.area = width * height
	body.dirty = true
	refreshWorldSpace(body)
}

// generateRegularPolygon returns n vertices at radius r, angles starting at
// -pi/2 (one vertex points "up") and increasing by 2*pi/n, which winds the
// resulting polygon counter-clockwise.
func generateRegularPolygon(n int, r float64) []Vec2 {
	if n < 3 {
		return nil
	}

	verts := make([]Vec2, n)
	dTheta := 2 * math.Pi / float64(n)
	startAngle := -math.Pi / 2

	for i := 0; i < n; i++ {
		theta := startAngle + float64(i)*dTheta
		verts[i] = Vec2{r * math.Cos(theta), r * math.Sin(theta)}
	}

	return verts
}

// regularPolygonInertia computes the moment of inertia of a regular n-gon
// about its centre of mass. Returns 0 for degenerate inputs (m <= 0 or
// n < 3), which is also what an immovable body needs.
func regularPolygonInertia(n int, mass, radius float64) float64 {
	if n < 3 || mass <= 0 {
		return 0
	}
	angle := 2 * math.Pi / float64(n)
	return (mass * radius * radius / 12) * (3 + math.Cos(angle))
}

func computeInverseMass(mass float64, isStatic bool) float64 {
	if isStatic || mass <= 0 {
		return 0
	}
	return 1 / mass
}

func safeInverse(x float64) float64 {
	if x > 0 {
		return 1 / x
	}
	return 0
}

// ==================== MUTATORS ====================

// Move translates the body's position by delta and marks its world-space
// cache stale.
func (b *RigidBody) Move(delta Vec2) {
	b.position = b.position.Add(delta)
	b.dirty = true
}

// Rotate adds radians to the body's rotation and marks its world-space
// cache stale.
func (b *RigidBody) Rotate(radians float64) {
	b.rotation += radians
	b.dirty = true
}

// SnapTo sets the body's position outright and marks its world-space cache
// stale.
func (b *RigidBody) SnapTo(p Vec2) {
	b.position = p
	b.dirty = true
}

// ==================== ACCESSORS ====================

func (b *RigidBody) Position() Vec2            { return b.position }
func (b *RigidBody) Rotation() float64         { return b.rotation }
func (b *RigidBody) LinearVelocity() Vec2      { return b.linearVelocity }
func (b *RigidBody) AngularVelocity() float64  { return b.angularVelocity }
func (b *RigidBody) IsStatic() bool            { return b.isStatic }
func (b *RigidBody) Mass() float64             { return b.mass }
func (b *RigidBody) InverseMass() float64      { return b.inverseMass }
func (b *RigidBody) Restitution() float64      { return b.restitution }
func (b *RigidBody) StaticFriction() float64   { return b.staticFriction }
func (b *RigidBody) DynamicFriction() float64  { return b.dynamicFriction }

// VerticesWorld returns the cached world-space vertex set, rebuilding it
// first if stale. Callers outside the package (a renderer) go through
// this; internal pipeline stages call refreshWorldSpace directly to make
// the rebuild point explicit.
func (b *RigidBody) VerticesWorld() []Vec2 {
	refreshWorldSpace(b)
	return b.verticesWorld
}

// SetLinearVelocity overwrites the body's linear velocity outright, used
// by scene setup to launch a body with an initial speed.
func (b *RigidBody) SetLinearVelocity(v Vec2) {
	b.linearVelocity = v
}

// SetAngularVelocity overwrites the body's angular velocity outright.
func (b *RigidBody) SetAngularVelocity(w float64) {
	b.angularVelocity = w
}

// SetRestitution sets the coefficient of restitution, clamped to [0,1].
func (b *RigidBody) SetRestitution(e float64) {
	b.restitution = math.Min(1, math.Max(0, e))
}

// SetFriction sets both Coulomb friction coefficients.
func (b *RigidBody) SetFriction(static, dynamic float64) {
	b.staticFriction = static
	b.dynamicFriction = dynamic
}

// ApplyForce adds force to the body's force accumulator. Step's integration
// clears the accumulator without applying it to the velocity: only gravity
// accelerates a body. Static bodies ignore it.
func (b *RigidBody) ApplyForce(force Vec2) {
	if b.isStatic {
		return
	}
	b.force = b.force.Add(force)
}

// SetMass sets the body's mass and derives inverseMass, keeping isStatic
// consistent: a mass <= 0 makes the body static with inverseMass 0.
func (b *RigidBody) SetMass(mass float64) {
	b.mass = mass
	b.isStatic = mass <= 0
	b.inverseMass = computeInverseMass(mass, b.isStatic)
}

// SetMoment sets the body's moment of inertia and derives inverseInertia.
// A moment <= 0 (an immovable body, or one that should never spin) yields
// inverseInertia 0.
func (b *RigidBody) SetMoment(moment float64) {
	b.inertia = moment
	b.inverseInertia = safeInverse(moment)
}

// BoxInertia returns the moment of inertia of a solid rectangle of the
// given mass, width and height about its centre of mass.
func BoxInertia(mass, width, height float64) float64 {
	if mass <= 0 {
		return 0
	}
	return mass * (width*width + height*height) / 12
}

// NewBoxBody builds a body with SetBoxVertices geometry and mass/inertia
// derived from BoxInertia, mirroring NewRegularPolygonBody's convenience
// for the rectangle case.
func NewBoxBody(width, height, mass float64) *RigidBody {
	body := NewRigidBody()
	SetBoxVertices(body, width, height)
	body.SetMass(mass)
	body.SetMoment(BoxInertia(mass, width, height))
	return body
}

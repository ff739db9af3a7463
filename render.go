package tumble

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// whitePixel is a 1x1 white image used to fill arbitrary triangles for
// rotated rectangles and polygons.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// toNRGBA converts a Color to the stdlib color type ebiten drawing expects.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(Clamp(c.R, 0, 1) * 255),
		G: uint8(Clamp(c.G, 0, 1) * 255),
		B: uint8(Clamp(c.B, 0, 1) * 255),
		A: uint8(Clamp(c.A, 0, 1) * 255),
	}
}

const (
	gridSpacing     = 50.0
	spawnPopFrom    = 0.2
	spawnPopSeconds = 0.25
	velocityScale   = 0.15 // seconds of travel shown by a velocity vector
	forceScale      = 0.05
)

// Renderer draws a World to an ebiten image each frame: grid, boundaries,
// trails, constraints, bodies, and vector overlays, each gated by its
// Settings toggle. Newly added bodies scale in with a short pop animation.
type Renderer struct {
	world *World

	// pops maps body id to its spawn animation. Entries are dropped when
	// the tween finishes or the body disappears.
	pops map[string]*gween.Tween
	seen map[string]bool
}

// NewRenderer creates a renderer for the given world.
func NewRenderer(world *World) *Renderer {
	return &Renderer{
		world: world,
		pops:  make(map[string]*gween.Tween),
		seen:  make(map[string]bool),
	}
}

// Draw paints the current world state. dt is the display frame delta in
// seconds, used only to advance spawn animations.
func (r *Renderer) Draw(screen *ebiten.Image, dt float64) {
	settings := r.world.Settings

	if settings.ShowGrid {
		r.drawGrid(screen)
	}
	r.drawBounds(screen)

	if settings.ShowTrails {
		for _, b := range r.world.Bodies() {
			r.drawTrail(screen, b)
		}
	}

	if settings.ShowConstraints {
		for _, c := range r.world.Constraints() {
			r.drawConstraint(screen, c)
		}
	}

	r.updatePops(dt)
	for _, b := range r.world.Bodies() {
		r.drawBody(screen, b)
	}

	if settings.ShowVelocities || settings.ShowForces {
		for _, b := range r.world.Bodies() {
			r.drawVectors(screen, b)
		}
	}
}

// updatePops starts a pop tween for bodies seen for the first time and
// advances running tweens, forgetting bodies that left the world.
func (r *Renderer) updatePops(dt float64) {
	current := make(map[string]bool, len(r.world.Bodies()))
	for _, b := range r.world.Bodies() {
		current[b.ID] = true
		if !r.seen[b.ID] {
			r.pops[b.ID] = gween.New(spawnPopFrom, 1, spawnPopSeconds, ease.OutBack)
		}
	}
	for id := range r.seen {
		if !current[id] {
			delete(r.pops, id)
		}
	}
	r.seen = current

	for id, tween := range r.pops {
		if _, finished := tween.Update(float32(dt)); finished {
			delete(r.pops, id)
		}
	}
}

// popScale returns the current spawn animation scale for a body, 1 when no
// animation is running.
func (r *Renderer) popScale(id string) float64 {
	tween := r.pops[id]
	if tween == nil {
		return 1
	}
	value, _ := tween.Update(0)
	return float64(value)
}

func (r *Renderer) drawGrid(screen *ebiten.Image) {
	bounds := r.world.Settings.Bounds
	clr := color.NRGBA{255, 255, 255, 18}

	for x := bounds.X; x <= bounds.X+bounds.Width; x += gridSpacing {
		vector.StrokeLine(screen, float32(x), float32(bounds.Y), float32(x), float32(bounds.Y+bounds.Height), 1, clr, false)
	}
	for y := bounds.Y; y <= bounds.Y+bounds.Height; y += gridSpacing {
		vector.StrokeLine(screen, float32(bounds.X), float32(y), float32(bounds.X+bounds.Width), float32(y), 1, clr, false)
	}
}

func (r *Renderer) drawBounds(screen *ebiten.Image) {
	settings := r.world.Settings
	bounds := settings.Bounds
	clr := color.NRGBA{255, 255, 255, 90}

	if settings.GroundEnabled {
		y := float32(bounds.Y + bounds.Height)
		vector.StrokeLine(screen, float32(bounds.X), y, float32(bounds.X+bounds.Width), y, 2, clr, true)
	}
	if settings.WallsEnabled {
		vector.StrokeLine(screen, float32(bounds.X), float32(bounds.Y), float32(bounds.X), float32(bounds.Y+bounds.Height), 2, clr, true)
		vector.StrokeLine(screen, float32(bounds.X+bounds.Width), float32(bounds.Y), float32(bounds.X+bounds.Width), float32(bounds.Y+bounds.Height), 2, clr, true)
		vector.StrokeLine(screen, float32(bounds.X), float32(bounds.Y), float32(bounds.X+bounds.Width), float32(bounds.Y), 2, clr, true)
	}
}

func (r *Renderer) drawTrail(screen *ebiten.Image, b *Body) {
	trail := b.Trail()
	for i := 1; i < len(trail); i++ {
		alpha := uint8(20 + 120*i/len(trail))
		clr := b.Color.toNRGBA()
		clr.A = alpha
		vector.StrokeLine(screen,
			float32(trail[i-1].X), float32(trail[i-1].Y),
			float32(trail[i].X), float32(trail[i].Y),
			1, clr, false)
	}
}

func (r *Renderer) drawConstraint(screen *ebiten.Image, c *Constraint) {
	a := r.world.Body(c.BodyA)
	if a == nil {
		return
	}
	end := c.AnchorB
	if c.BodyB != "" {
		b := r.world.Body(c.BodyB)
		if b == nil {
			return
		}
		end = b.Position
	}

	clr := color.NRGBA{200, 200, 210, 140}
	if c.Type == ConstraintSpring {
		clr = color.NRGBA{120, 200, 255, 140}
	}
	vector.StrokeLine(screen,
		float32(a.Position.X), float32(a.Position.Y),
		float32(end.X), float32(end.Y),
		1.5, clr, true)

	if c.BodyB == "" {
		// Mark the fixed world anchor.
		vector.DrawFilledCircle(screen, float32(end.X), float32(end.Y), 3, clr, true)
	}
}

func (r *Renderer) drawBody(screen *ebiten.Image, b *Body) {
	pop := r.popScale(b.ID)
	clr := b.Color.toNRGBA()

	switch s := b.Shape.(type) {
	case Circle:
		vector.DrawFilledCircle(screen,
			float32(b.Position.X), float32(b.Position.Y),
			float32(s.Radius*pop), clr, true)
		if b.Static {
			vector.StrokeCircle(screen,
				float32(b.Position.X), float32(b.Position.Y),
				float32(s.Radius*pop), 2, color.NRGBA{255, 255, 255, 160}, true)
		}
	case Rectangle:
		halfW, halfH := s.Width/2*pop, s.Height/2*pop
		corners := []Vec2{
			{-halfW, -halfH},
			{halfW, -halfH},
			{halfW, halfH},
			{-halfW, halfH},
		}
		fillConvex(screen, b.Position, b.Angle, corners, clr)
	case Polygon:
		if len(s.Points) >= 3 {
			scaled := make([]Vec2, len(s.Points))
			for i, p := range s.Points {
				scaled[i] = p.Scale(pop)
			}
			fillConvex(screen, b.Position, b.Angle, scaled, clr)
		}
	}
}

func (r *Renderer) drawVectors(screen *ebiten.Image, b *Body) {
	settings := r.world.Settings
	if settings.ShowVelocities {
		tip := b.Position.Add(b.Velocity.Scale(velocityScale))
		vector.StrokeLine(screen,
			float32(b.Position.X), float32(b.Position.Y),
			float32(tip.X), float32(tip.Y),
			2, color.NRGBA{80, 255, 120, 200}, true)
	}
	if settings.ShowForces {
		// Acceleration holds the last net force over mass.
		tip := b.Position.Add(b.Acceleration.Scale(b.Mass * forceScale))
		vector.StrokeLine(screen,
			float32(b.Position.X), float32(b.Position.Y),
			float32(tip.X), float32(tip.Y),
			2, color.NRGBA{255, 90, 90, 200}, true)
	}
}

// fillConvex draws a filled convex polygon at the given world position and
// rotation as a triangle fan over the white pixel.
func fillConvex(screen *ebiten.Image, position Vec2, angle float64, points []Vec2, clr color.NRGBA) {
	sin, cos := math.Sincos(angle)

	verts := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		x := position.X + p.X*cos - p.Y*sin
		y := position.Y + p.X*sin + p.Y*cos
		verts[i] = ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   0,
			SrcY:   0,
			ColorR: float32(clr.R) / 255,
			ColorG: float32(clr.G) / 255,
			ColorB: float32(clr.B) / 255,
			ColorA: float32(clr.A) / 255,
		}
	}

	indices := make([]uint16, 0, (len(points)-2)*3)
	for i := 2; i < len(points); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	screen.DrawTriangles(verts, indices, whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

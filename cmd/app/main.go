package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"racing-line-reward/internal/common"
	"racing-line-reward/internal/reward"
	"racing-line-reward/internal/track"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ============================================================================
// CONFIGURATION - Adjust these values to customize the viewer
// ============================================================================

// Render window dimensions
const (
	WindowWidth  = 1200
	WindowHeight = 800
)

// Interaction settings
const (
	MoveStep        = 0.01 // World units per tick, scaled by track width
	HeadingStep     = 2.0  // Degrees per tick
	SteeringStep    = 1.0  // Degrees per tick
	MaxSteering     = 90.0
	ViewScaleMargin = 0.9 // Margin for fitting the loop in window
)

// Visualization colors
var (
	ColorBackground = color.RGBA{20, 20, 20, 255}
	ColorLoop       = color.RGBA{80, 80, 80, 255}
	ColorSight      = color.RGBA{50, 155, 50, 120}
	ColorClosest    = color.RGBA{0, 160, 255, 255}
	ColorTarget     = color.RGBA{50, 255, 50, 255}
	ColorCar        = color.RGBA{255, 0, 0, 255}
	ColorIdeal      = color.RGBA{50, 255, 50, 200}
	ColorSteering   = color.RGBA{255, 255, 0, 255}
)

// ============================================================================

// demoWaypoints is the small reference loop used when no track image is given.
var demoWaypoints = [][2]float64{
	{0.75, -0.7},
	{1.0, 0.0},
	{0.7, 0.52},
	{0.58, 0.7},
	{0.48, 0.8},
	{0.15, 0.95},
	{-0.1, 1.0},
	{-0.7, 0.75},
	{-0.9, 0.25},
	{-0.9, -0.55},
}

type Game struct {
	Config    reward.Config
	Evaluator *reward.Evaluator
	Params    reward.Params

	// Cached for the current mode and direction
	Dense      track.Loop
	Evaluation reward.Evaluation
	Err        error

	// Rendering Scale
	ViewScale   float32
	ViewOffsetX float32
	ViewOffsetY float32
}

func (g *Game) Update() error {
	dirty := false

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Params.IsReversed = !g.Params.IsReversed
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.Config.Mode == track.ModeCenter {
			g.Config.Mode = track.ModeShortcut
		} else {
			g.Config.Mode = track.ModeCenter
		}
		ev, err := reward.NewEvaluator(g.Config, nil)
		if err != nil {
			return err
		}
		g.Evaluator = ev
		dirty = true
	}

	step := MoveStep * g.Params.TrackWidth * 10
	moves := []struct {
		key    ebiten.Key
		dx, dy float64
	}{
		{ebiten.KeyArrowUp, 0, step},
		{ebiten.KeyArrowDown, 0, -step},
		{ebiten.KeyArrowLeft, -step, 0},
		{ebiten.KeyArrowRight, step, 0},
	}
	for _, m := range moves {
		if ebiten.IsKeyPressed(m.key) {
			g.Params.X += m.dx
			g.Params.Y += m.dy
			dirty = true
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.Params.Heading = common.NormalizeAngle(g.Params.Heading + HeadingStep)
		dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.Params.Heading = common.NormalizeAngle(g.Params.Heading - HeadingStep)
		dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.Params.SteeringAngle = math.Min(g.Params.SteeringAngle+SteeringStep, MaxSteering)
		dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.Params.SteeringAngle = math.Max(g.Params.SteeringAngle-SteeringStep, -MaxSteering)
		dirty = true
	}

	if dirty || g.Dense == nil {
		g.refresh()
	}
	return nil
}

// refresh re-evaluates the current pose and rebuilds the cached loop and view.
func (g *Game) refresh() {
	_, tc := g.Params.Split(g.Config.Mode)
	dense, err := reward.Dense(g.Config, tc)
	if err != nil {
		g.Err = err
		return
	}
	if g.Dense == nil || len(dense) != len(g.Dense) || dense[0] != g.Dense[0] {
		g.fit(dense)
	}
	g.Dense = dense
	g.Evaluation, g.Err = g.Evaluator.Evaluate(g.Params)
}

// fit centers the loop in the window. World y points up, screen y down.
func (g *Game) fit(loop track.Loop) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range loop {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	w, h := math.Max(maxX-minX, 1e-9), math.Max(maxY-minY, 1e-9)

	scale := math.Min(WindowWidth/w, WindowHeight/h) * ViewScaleMargin
	g.ViewScale = float32(scale)
	g.ViewOffsetX = float32((WindowWidth-w*scale)/2 - minX*scale)
	g.ViewOffsetY = float32((WindowHeight-h*scale)/2 + maxY*scale)
}

func (g *Game) toScreen(x, y float64) (float32, float32) {
	return float32(x)*g.ViewScale + g.ViewOffsetX, g.ViewOffsetY - float32(y)*g.ViewScale
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	for i := range g.Dense {
		a, b := g.Dense[i], g.Dense[(i+1)%len(g.Dense)]
		p1x, p1y := g.toScreen(a.X, a.Y)
		p2x, p2y := g.toScreen(b.X, b.Y)
		vector.StrokeLine(screen, p1x, p1y, p2x, p2y, 2, ColorLoop, true)
	}

	car := common.Vec2{X: g.Params.X, Y: g.Params.Y}
	cx, cy := g.toScreen(car.X, car.Y)

	if g.Err == nil {
		t := g.Evaluation.Target
		vector.StrokeCircle(screen, cx, cy, float32(t.Radius)*g.ViewScale, 1, ColorSight, true)

		sx, sy := g.toScreen(t.Closest.X, t.Closest.Y)
		vector.FillCircle(screen, sx, sy, 4, ColorClosest, true)
		tx, ty := g.toScreen(t.Point.X, t.Point.Y)
		vector.FillCircle(screen, tx, ty, 5, ColorTarget, true)

		g.drawRay(screen, car, g.Params.Heading+g.Evaluation.Ideal, t.Radius, ColorIdeal)
	}
	g.drawRay(screen, car, g.Params.Heading+g.Params.SteeringAngle, g.Params.TrackWidth*0.5, ColorSteering)
	g.drawCar(screen, car)

	vector.FillRect(screen, 0, 0, 220, 170, color.RGBA{0, 0, 0, 180}, true)

	msg := "REWARD MONITOR\n"
	msg += "----------------\n"
	msg += fmt.Sprintf("Mode:     %s\n", g.Config.Mode)
	msg += fmt.Sprintf("Reversed: %t\n", g.Params.IsReversed)
	msg += fmt.Sprintf("Heading:  %.1f\n", g.Params.Heading)
	msg += fmt.Sprintf("Steering: %.1f\n", g.Params.SteeringAngle)
	if g.Err != nil {
		msg += fmt.Sprintf("Error: %v\n", g.Err)
	} else {
		msg += fmt.Sprintf("Ideal:    %.1f\n", g.Evaluation.Ideal)
		msg += fmt.Sprintf("Reward:   %.3f\n", g.Evaluation.Reward)
		if g.Evaluation.Target.Fallback {
			msg += " [FALLBACK]\n"
		}
	}
	msg += "\nArrows move, Q/E heading\nA/D steer, R reverse, M mode"

	ebitenutil.DebugPrint(screen, msg)
}

// drawRay strokes a line of world length from the car at angle degrees.
func (g *Game) drawRay(screen *ebiten.Image, from common.Vec2, angle, length float64, clr color.Color) {
	dx, dy := common.ToCartesian(length, angle)
	x1, y1 := g.toScreen(from.X, from.Y)
	x2, y2 := g.toScreen(from.X+dx, from.Y+dy)
	vector.StrokeLine(screen, x1, y1, x2, y2, 2, clr, true)
}

func (g *Game) drawCar(screen *ebiten.Image, pos common.Vec2) {
	rad := g.Params.Heading * math.Pi / 180
	cosH, sinH := math.Cos(rad), math.Sin(rad)
	halfL := g.Params.TrackWidth * 0.15
	halfW := halfL / 2

	corners := [4][2]float64{
		{halfL, halfW},
		{halfL, -halfW},
		{-halfL, -halfW},
		{-halfL, halfW},
	}

	var path vector.Path
	for i, p := range corners {
		wx := pos.X + p[0]*cosH - p[1]*sinH
		wy := pos.Y + p[0]*sinH + p[1]*cosH
		sx, sy := g.toScreen(wx, wy)
		if i == 0 {
			path.MoveTo(sx, sy)
		} else {
			path.LineTo(sx, sy)
		}
	}
	path.Close()

	var cs ebiten.ColorScale
	cs.ScaleWithColor(ColorCar)
	vector.FillPath(screen, &path, nil, &vector.DrawPathOptions{
		AntiAlias:  true,
		ColorScale: cs,
	})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return WindowWidth, WindowHeight
}

// initialParams places the car on the demo loop, or at the start of an
// extracted centerline facing along it.
func initialParams(cl *track.Centerline) reward.Params {
	if cl == nil {
		return reward.Params{
			X:          0.7,
			Y:          1.05,
			Heading:    160,
			TrackWidth: 0.45,
			Waypoints:  demoWaypoints,
		}
	}
	start, next := cl.Loop[0], cl.Loop[1%len(cl.Loop)]
	p := reward.Params{
		X:          start.X,
		Y:          start.Y,
		Heading:    common.Bearing(start, next),
		TrackWidth: cl.Width,
	}
	return p.WithWaypoints(cl.Loop)
}

func main() {
	configPath := flag.String("config", "", "YAML reward config (defaults when empty)")
	trackImage := flag.String("track-image", "", "track PNG to extract the centerline from")
	trackScale := flag.Float64("track-scale", 1.0, "meters per pixel of -track-image")
	flag.Parse()

	cfg := reward.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = reward.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	var cl *track.Centerline
	if *trackImage != "" {
		loaded, err := track.LoadCenterline(*trackImage, *trackScale)
		if err != nil {
			log.Fatal(err)
		}
		cl = &loaded
	}

	ev, err := reward.NewEvaluator(cfg, nil)
	if err != nil {
		log.Fatal(err)
	}

	game := &Game{
		Config:    cfg,
		Evaluator: ev,
		Params:    initialParams(cl),
	}
	game.refresh()

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("Racing Line Reward")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

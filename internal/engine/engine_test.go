package engine_test

import (
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/phaseflow/internal/engine"
	"github.com/san-kum/phaseflow/internal/particles"
	"github.com/san-kum/phaseflow/internal/phase"
	"github.com/san-kum/phaseflow/internal/render"
)

// drift is dx/dt = 0, dy/dt = 1.
type drift struct{}

func (drift) Eval(x, y float64, _ phase.Params) (float64, float64) { return 0, 1 }
func (drift) IsValid() bool                                        { return true }
func (drift) Err() string                                          { return "" }

// nopSurface satisfies render.Surface without drawing.
type nopSurface struct{}

func (nopSurface) Size() (int, int)                              { return 400, 300 }
func (nopSurface) Clear(color.Color)                             {}
func (nopSurface) Line(x0, y0, x1, y1, w float64, c color.Color) {}
func (nopSurface) FillCircle(x, y, r float64, c color.Color)     {}
func (nopSurface) StrokeCircle(x, y, r float64, c color.Color)   {}
func (nopSurface) Fade(alpha float64)                            {}

var _ render.Surface = nopSurface{}

var _ = Describe("Engine", func() {
	var e *engine.Engine

	BeforeEach(func() {
		e = engine.New(drift{}, 400, 300)
		Expect(e.SetViewport(phase.Viewport{XMin: -2, XMax: 2, YMin: -2, YMax: 2})).To(Succeed())
	})

	Describe("lifecycle", func() {
		It("is idle until seeded or started", func() {
			Expect(e.Active()).To(BeFalse())

			e.Step(nopSurface{})
			Expect(e.Manager().Empty()).To(BeTrue())
		})

		It("becomes active when a particle is seeded", func() {
			Expect(e.OnPointerDown(200, 150)).To(BeTrue())
			Expect(e.Active()).To(BeTrue())
			Expect(e.Running()).To(BeFalse(), "seeding must not start the field simulation")
		})

		It("regenerates the field pool on start", func() {
			e.Start()
			Expect(e.Running()).To(BeTrue())
			Expect(e.Manager().Field()).To(HaveLen(particles.DefaultGridSize * particles.DefaultGridSize))
		})

		It("keeps seeded trajectories alive through pause", func() {
			e.OnPointerDown(200, 150)
			e.Start()
			e.Pause()

			Expect(e.Running()).To(BeFalse())
			Expect(e.Active()).To(BeTrue(), "seeded particles keep the loop scheduled")
		})

		It("goes idle when paused with no seeds", func() {
			e.Start()
			e.Pause()
			Expect(e.Active()).To(BeFalse())
		})

		It("reset drains everything and is idempotent", func() {
			e.OnPointerDown(200, 150)
			e.Start()

			e.Reset()
			Expect(e.Active()).To(BeFalse())
			Expect(e.Manager().Empty()).To(BeTrue())
			Expect(e.StaticDirty()).To(BeTrue())

			e.Reset()
			Expect(e.Manager().Empty()).To(BeTrue())
		})
	})

	Describe("stepping", func() {
		It("advances a seeded particle through the drift field", func() {
			e.OnPointerDown(200, 150) // data (0, 0)
			e.Step(nopSurface{})

			p := e.Manager().Seeded()[0]
			Expect(p.X).To(Equal(0.0))
			Expect(p.Y).To(BeNumerically("~", engine.DefaultBaseStep, 1e-12))
		})

		It("freezes at speed zero without going idle", func() {
			e.OnPointerDown(200, 150)
			e.SetSpeed(0)

			for i := 0; i < 25; i++ {
				e.Step(nopSurface{})
			}

			p := e.Manager().Seeded()[0]
			Expect(p.X).To(Equal(0.0))
			Expect(p.Y).To(Equal(0.0))
			Expect(e.Active()).To(BeTrue())
		})

		It("does not advance field particles while paused", func() {
			e.Start()
			e.Pause()
			before := append([]particles.Particle(nil), e.Manager().Field()...)

			// Field pool alone does not keep the loop active, so seed one.
			e.OnPointerDown(200, 150)
			e.Step(nopSurface{})

			for i, p := range e.Manager().Field() {
				Expect(p.X).To(Equal(before[i].X))
				Expect(p.Y).To(Equal(before[i].Y))
			}
		})
	})

	Describe("interaction", func() {
		It("ignores clicks outside the plot rectangle", func() {
			Expect(e.OnPointerDown(-5, 10)).To(BeFalse())
			Expect(e.OnPointerDown(500, 10)).To(BeFalse())
			Expect(e.Manager().Empty()).To(BeTrue())
		})

		It("drops seeds beyond the cap silently", func() {
			for i := 0; i < 150; i++ {
				e.OnPointerDown(200, 150)
			}
			Expect(e.Manager().Seeded()).To(HaveLen(particles.DefaultMaxSeeded))
		})
	})

	Describe("configuration", func() {
		It("rejects malformed viewports", func() {
			err := e.SetViewport(phase.Viewport{XMin: 2, XMax: -2, YMin: 0, YMax: 1})
			Expect(err).To(MatchError(phase.ErrInvalidViewport))
		})

		It("marks the static layer dirty on parameter change", func() {
			e.RedrawStatic(nopSurface{})
			Expect(e.StaticDirty()).To(BeFalse())

			e.SetParam("alpha", 2.5)
			Expect(e.StaticDirty()).To(BeTrue())
		})

		It("marks the static layer dirty on speed change", func() {
			e.RedrawStatic(nopSurface{})
			Expect(e.StaticDirty()).To(BeFalse())

			e.SetSpeed(2)
			Expect(e.StaticDirty()).To(BeTrue())
		})

		It("setters never restart the animation", func() {
			Expect(e.Active()).To(BeFalse())
			e.SetParam("alpha", 2.5)
			e.SetSpeed(3)
			Expect(e.SetViewport(phase.Viewport{XMin: -1, XMax: 1, YMin: -1, YMax: 1})).To(Succeed())
			Expect(e.Active()).To(BeFalse())
		})
	})
})

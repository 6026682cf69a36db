package control_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/viewport"
)

var _ = Describe("Controller", func() {
	var (
		view *viewport.Viewport
		ctrl *control.Controller
	)

	press := func(keys ...control.Key) {
		for _, k := range keys {
			Expect(ctrl.Handle(control.KeyDown{Key: k})).To(BeFalse())
		}
	}

	BeforeEach(func() {
		view = viewport.Default()
		ctrl = control.New(view, fractal.DefaultParams(), nil)
	})

	It("starts dirty so the first frame is drawn", func() {
		Expect(ctrl.Dirty()).To(BeTrue())
		ctrl.ClearDirty()
		Expect(ctrl.Dirty()).To(BeFalse())
	})

	Describe("panning", func() {
		BeforeEach(func() { ctrl.ClearDirty() })

		It("moves by an eighth of the view along each axis", func() {
			scale := view.Scale

			press(control.KeyPanRight)
			Expect(view.CenterX).To(BeNumerically("~", -0.75+80*scale, 1e-12))
			Expect(ctrl.Dirty()).To(BeTrue())

			press(control.KeyPanLeft, control.KeyPanLeft)
			Expect(view.CenterX).To(BeNumerically("~", -0.75-80*scale, 1e-12))

			press(control.KeyPanUp)
			Expect(view.CenterY).To(BeNumerically("~", -60*scale, 1e-12))

			press(control.KeyPanDown, control.KeyPanDown)
			Expect(view.CenterY).To(BeNumerically("~", 60*scale, 1e-12))
		})
	})

	Describe("zooming", func() {
		It("divides the scale by 1.25 on zoom in and multiplies on zoom out", func() {
			scale := view.Scale

			press(control.KeyZoomIn)
			Expect(view.Scale).To(BeNumerically("~", scale/1.25, 1e-15))

			press(control.KeyZoomOut, control.KeyZoomOut)
			Expect(view.Scale).To(BeNumerically("~", scale*1.25, 1e-15))
		})

		It("maps wheel direction to zoom", func() {
			scale := view.Scale
			ctrl.ClearDirty()

			ctrl.Handle(control.Wheel{Delta: 1})
			Expect(view.Scale).To(BeNumerically("~", scale/1.25, 1e-15))
			Expect(ctrl.Dirty()).To(BeTrue())

			ctrl.Handle(control.Wheel{Delta: -2})
			Expect(view.Scale).To(BeNumerically("~", scale, 1e-15))
		})

		It("ignores a zero wheel delta", func() {
			ctrl.ClearDirty()
			ctrl.Handle(control.Wheel{})
			Expect(ctrl.Dirty()).To(BeFalse())
		})

		It("has no zoom clamp before the scale underflows", func() {
			for i := 0; i < 200; i++ {
				press(control.KeyZoomIn)
			}
			Expect(view.Scale).To(BeNumerically(">", 0))
			Expect(view.Scale).To(BeNumerically("<", 1e-20))
		})
	})

	Describe("iteration keys", func() {
		It("doubles twice from the default to 4096", func() {
			press(control.KeyDoubleIterations, control.KeyDoubleIterations)
			Expect(ctrl.Params().MaxIterations).To(Equal(uint32(4096)))
		})

		It("halves twice from the default to 256", func() {
			press(control.KeyHalveIterations, control.KeyHalveIterations)
			Expect(ctrl.Params().MaxIterations).To(Equal(uint32(256)))
		})

		It("never halves below 1", func() {
			for i := 0; i < 20; i++ {
				press(control.KeyHalveIterations)
			}
			Expect(ctrl.Params().MaxIterations).To(Equal(uint32(1)))
		})
	})

	Describe("periodicity keys", func() {
		It("steps the interval by one with a floor of 1", func() {
			press(control.KeyPeriodicityUp)
			Expect(ctrl.Params().Periodicity).To(Equal(uint32(21)))

			for i := 0; i < 30; i++ {
				press(control.KeyPeriodicityDown)
			}
			Expect(ctrl.Params().Periodicity).To(Equal(uint32(1)))
			Expect(ctrl.Params().Validate()).To(Succeed())
		})
	})

	It("toggles monochrome", func() {
		press(control.KeyMonochrome)
		Expect(ctrl.Params().Monochrome).To(BeTrue())
		press(control.KeyMonochrome)
		Expect(ctrl.Params().Monochrome).To(BeFalse())
	})

	It("resets the viewport", func() {
		press(control.KeyPanRight, control.KeyZoomIn, control.KeyPanDown)
		press(control.KeyReset)

		Expect(view.CenterX).To(Equal(-0.75))
		Expect(view.CenterY).To(Equal(0.0))
		Expect(view.Scale).To(Equal(viewport.FitScale(640, 480)))
	})

	Describe("mouse", func() {
		It("recenters on a left click", func() {
			wantX, wantY := view.ScreenToComplex(100, 50)
			ctrl.ClearDirty()

			ctrl.Handle(control.MouseDown{X: 100, Y: 50, Button: control.ButtonLeft})
			Expect(view.CenterX).To(BeNumerically("~", wantX, 1e-12))
			Expect(view.CenterY).To(BeNumerically("~", wantY, 1e-12))
			Expect(ctrl.Dirty()).To(BeTrue())
		})

		It("ignores other buttons", func() {
			ctrl.ClearDirty()
			ctrl.Handle(control.MouseDown{X: 100, Y: 50, Button: control.ButtonRight})
			Expect(view.CenterX).To(Equal(-0.75))
			Expect(ctrl.Dirty()).To(BeFalse())
		})
	})

	Describe("window events", func() {
		BeforeEach(func() { ctrl.ClearDirty() })

		It("resizes without touching scale or center", func() {
			scale := view.Scale
			ctrl.Handle(control.Resize{Width: 1024, Height: 768})

			Expect(view.Width).To(Equal(1024))
			Expect(view.Height).To(Equal(768))
			Expect(view.Scale).To(Equal(scale))
			Expect(ctrl.Dirty()).To(BeTrue())
		})

		It("ignores a degenerate resize", func() {
			ctrl.Handle(control.Resize{Width: 0, Height: 768})
			Expect(view.Width).To(Equal(640))
			Expect(ctrl.Dirty()).To(BeFalse())
		})

		It("marks dirty on expose without changing state", func() {
			before := *view
			params := ctrl.Params()

			ctrl.Handle(control.Expose{})
			Expect(ctrl.Dirty()).To(BeTrue())
			Expect(*view).To(Equal(before))
			Expect(ctrl.Params()).To(Equal(params))
		})

		It("stops on quit", func() {
			Expect(ctrl.Handle(control.Quit{})).To(BeTrue())
			Expect(ctrl.HandleAll([]control.Event{control.Expose{}, control.Quit{}, control.Resize{Width: 1, Height: 1}})).To(BeTrue())
			Expect(view.Width).To(Equal(640))
		})
	})

	It("ignores unbound keys", func() {
		ctrl.ClearDirty()
		Expect(ctrl.Handle(control.KeyDown{Key: control.KeyNone})).To(BeFalse())
		Expect(ctrl.Dirty()).To(BeFalse())
	})
})

var _ = Describe("KeyFromRune", func() {
	DescribeTable("maps key letters",
		func(r rune, want control.Key) {
			Expect(control.KeyFromRune(r)).To(Equal(want))
		},
		Entry("a", 'a', control.KeyPanLeft),
		Entry("d", 'd', control.KeyPanRight),
		Entry("w", 'w', control.KeyPanUp),
		Entry("s", 's', control.KeyPanDown),
		Entry("z", 'z', control.KeyZoomIn),
		Entry("x", 'x', control.KeyZoomOut),
		Entry("r", 'r', control.KeyReset),
		Entry("b", 'b', control.KeyMonochrome),
		Entry("comma", ',', control.KeyHalveIterations),
		Entry("period", '.', control.KeyDoubleIterations),
		Entry("unbound", 'q', control.KeyNone),
	)

	It("names keys", func() {
		Expect(control.KeyZoomIn.String()).To(Equal("zoom-in"))
		Expect(control.Key(math.MaxInt8).String()).To(Equal("unknown"))
	})
})

package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/colourpush/internal/dynamo"
	"github.com/san-kum/colourpush/internal/physics"
)

var _ = Describe("Contribution", func() {
	var p dynamo.Point

	BeforeEach(func() {
		p = dynamo.NewPoint(100, 100, 100)
	})

	Context("with coincident points", func() {
		It("skips a push", func() {
			q := dynamo.NewPoint(100, 100, 100)
			c, applied := physics.Contribution(p, q)
			Expect(applied).To(BeFalse())
			Expect(c).To(Equal(dynamo.Vec3{}))
		})

		It("does not skip a pull and stays finite", func() {
			q := dynamo.NewPoint(100, 100, 100)
			q.Mass = -1
			c, applied := physics.Contribution(p, q)
			Expect(applied).To(BeTrue())
			Expect(c.IsValid()).To(BeTrue())
		})
	})

	Context("just inside the push epsilon", func() {
		var q dynamo.Point

		BeforeEach(func() {
			q = dynamo.NewPoint(100.5, 100, 100)
		})

		It("skips a push", func() {
			_, applied := physics.Contribution(p, q)
			Expect(applied).To(BeFalse())
		})

		It("applies a pull", func() {
			q.Mass = -1
			c, applied := physics.Contribution(p, q)
			Expect(applied).To(BeTrue())
			Expect(c.R).To(BeNumerically(">", 0))
		})
	})

	It("pushes away along the offset with inverse-cube falloff", func() {
		p = dynamo.NewPoint(0, 0, 0)
		q := dynamo.NewPoint(10, 0, 0)

		c, applied := physics.Contribution(p, q)
		Expect(applied).To(BeTrue())

		sqD := 3.0 * 100
		expected := physics.Strength * -10 / (math.Sqrt(sqD) * sqD)
		Expect(c.R).To(BeNumerically("~", expected, 1e-12))
		Expect(c.G).To(BeZero())
		Expect(c.B).To(BeZero())
	})

	It("scales with the mass product", func() {
		q := dynamo.NewPoint(120, 90, 100)
		unit, _ := physics.Contribution(p, q)

		q.Mass = 2.5
		heavy, _ := physics.Contribution(p, q)
		Expect(heavy.R).To(BeNumerically("~", 2.5*unit.R, 1e-12))
		Expect(heavy.G).To(BeNumerically("~", 2.5*unit.G, 1e-12))
	})

	It("flips direction for a negative mass product", func() {
		q := dynamo.NewPoint(110, 100, 100)
		push, _ := physics.Contribution(p, q)
		q.Mass = -1
		pull, _ := physics.Contribution(p, q)
		Expect(push.R).To(BeNumerically("<", 0))
		Expect(pull.R).To(BeNumerically("~", -push.R, 1e-12))
	})

	It("never moves a fixed point", func() {
		p.Fixed = true
		_, applied := physics.Contribution(p, dynamo.NewPoint(0, 0, 0))
		Expect(applied).To(BeFalse())
	})
})

var _ = Describe("Interaction", func() {
	It("classifies by the sign of the mass product", func() {
		Expect(physics.InteractionOf(1)).To(Equal(physics.Push))
		Expect(physics.InteractionOf(0)).To(Equal(physics.Push))
		Expect(physics.InteractionOf(-0.5)).To(Equal(physics.Pull))
	})

	It("never skips pulls", func() {
		Expect(physics.Pull.Epsilon()).To(Equal(math.Inf(-1)))
		Expect(physics.Push.Epsilon()).To(Equal(physics.PushEpsilon))
	})
})

var _ = Describe("Walls", func() {
	It("mirrors two coordinates and sits outside the cube on the third", func() {
		walls := physics.Walls(dynamo.NewPoint(10, 20, 30))
		lo, hi := -physics.WallOffset, 255+physics.WallOffset

		Expect(walls[0].Pos).To(Equal(dynamo.Vec3{R: lo, G: 20, B: 30}))
		Expect(walls[1].Pos).To(Equal(dynamo.Vec3{R: hi, G: 20, B: 30}))
		Expect(walls[2].Pos).To(Equal(dynamo.Vec3{R: 10, G: lo, B: 30}))
		Expect(walls[3].Pos).To(Equal(dynamo.Vec3{R: 10, G: hi, B: 30}))
		Expect(walls[4].Pos).To(Equal(dynamo.Vec3{R: 10, G: 20, B: lo}))
		Expect(walls[5].Pos).To(Equal(dynamo.Vec3{R: 10, G: 20, B: hi}))

		for _, w := range walls {
			Expect(w.Fixed).To(BeTrue())
			Expect(w.Mass).To(Equal(physics.WallMass))
		}
	})
})

var _ = Describe("HomePull", func() {
	It("does nothing inside the dead zone", func() {
		p := dynamo.NewPoint(100, 100, 100)
		p.Pos = dynamo.Vec3{R: 110, G: 100, B: 100}
		_, applied := physics.HomePull(p)
		Expect(applied).To(BeFalse())
	})

	It("pulls toward home outside the dead zone", func() {
		p := dynamo.NewPoint(100, 100, 100)
		p.Pos = dynamo.Vec3{R: 160, G: 100, B: 100}
		c, applied := physics.HomePull(p)
		Expect(applied).To(BeTrue())
		Expect(c.R).To(BeNumerically("<", 0))
	})
})

var _ = Describe("Field", func() {
	var scheme dynamo.Scheme

	BeforeEach(func() {
		scheme = dynamo.NewScheme(
			[]dynamo.Point{dynamo.NewAnchor(0, 0, 0), dynamo.NewAnchor(255, 255, 255)},
			[]dynamo.Point{
				dynamo.NewPoint(128, 97, 84),
				dynamo.NewPoint(134, 169, 103),
				dynamo.NewPoint(115, 122, 114),
			},
		)
	})

	It("returns one delta per movable point", func() {
		Expect(physics.NewField().Forces(scheme)).To(HaveLen(3))
	})

	It("does not mutate the scheme", func() {
		before := scheme.Clone()
		physics.NewField().Forces(scheme)
		Expect(scheme).To(Equal(before))
	})

	It("does not depend on point order", func() {
		field := physics.NewField()
		forward := field.Forces(scheme)

		reversed := scheme.Clone()
		n := len(reversed.Movable)
		for i := 0; i < n/2; i++ {
			reversed.Movable[i], reversed.Movable[n-1-i] = reversed.Movable[n-1-i], reversed.Movable[i]
		}
		backward := field.Forces(reversed)

		for i := range forward {
			Expect(backward[n-1-i].R).To(BeNumerically("~", forward[i].R, 1e-12))
			Expect(backward[n-1-i].G).To(BeNumerically("~", forward[i].G, 1e-12))
			Expect(backward[n-1-i].B).To(BeNumerically("~", forward[i].B, 1e-12))
		}
	})

	It("pushes a point near a face back into the cube", func() {
		s := dynamo.NewScheme(nil, []dynamo.Point{dynamo.NewPoint(2, 128, 128)})
		deltas := physics.NewField().Forces(s)
		Expect(deltas[0].R).To(BeNumerically(">", 0))
	})

	It("exerts nothing on a lone point without walls", func() {
		s := dynamo.NewScheme(nil, []dynamo.Point{dynamo.NewPoint(2, 128, 128)})
		f := &physics.Field{}
		Expect(f.Forces(s)[0]).To(Equal(dynamo.Vec3{}))
	})

	It("leaves fixed movable points without a delta", func() {
		scheme.Movable[1].Fixed = true
		deltas := physics.NewField().Forces(scheme)
		Expect(deltas[1]).To(Equal(dynamo.Vec3{}))
	})
})

package engine_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hemosim/internal/engine"
	"github.com/san-kum/hemosim/internal/hemo"
)

func normalScenario() hemo.Parameters {
	return hemo.Parameters{
		HeartRate:          75,
		EDV:                120,
		ESV:                50,
		Contractility:      0.5,
		VascularResistance: 1200,
		Compliance:         1.5,
		VenousPressure:     2,
		MaxElastance:       2.0,
		MinElastance:       0.06,
		UnstressedVolume:   10,
	}
}

func relChange(a, b float64) float64 {
	return math.Abs(a-b) / math.Abs(b)
}

var _ = Describe("Engine", func() {
	var (
		params hemo.Parameters
		opts   hemo.RunOptions
	)

	BeforeEach(func() {
		params = normalScenario()
		opts = hemo.DefaultRunOptions()
	})

	It("retains exactly one beat of samples", func() {
		result, err := engine.New().Simulate(params, opts)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.Trace).To(HaveLen(opts.StepsPerBeat))
		Expect(result.Steps).To(Equal(opts.Beats * opts.StepsPerBeat))

		for _, s := range result.Trace {
			Expect(s.CyclePhase).To(And(
				BeNumerically(">=", 0),
				BeNumerically("<", 1),
			))
		}
	})

	It("derives the time step from heart rate and steps per beat", func() {
		result, err := engine.New().Simulate(params, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Dt).To(Equal((60 / params.HeartRate) / float64(opts.StepsPerBeat)))
	})

	It("is deterministic", func() {
		a, err := engine.New().Simulate(params, opts)
		Expect(err).NotTo(HaveOccurred())
		b, err := engine.New().Simulate(params, opts)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Trace).To(Equal(b.Trace))
		Expect(a.Metrics).To(Equal(b.Metrics))
	})

	Describe("validation", func() {
		It("rejects a non-positive heart rate", func() {
			params.HeartRate = 0
			_, err := engine.New().Simulate(params, opts)
			Expect(err).To(MatchError(hemo.ErrInvalidParameter))
		})

		It("rejects equal max and min elastance", func() {
			params.MaxElastance = params.MinElastance
			_, err := engine.New().Simulate(params, opts)
			Expect(err).To(MatchError(hemo.ErrInvalidParameter))
		})

		It("rejects non-positive run options", func() {
			_, err := engine.New().Simulate(params, hemo.RunOptions{StepsPerBeat: 0, Beats: 8})
			Expect(err).To(MatchError(hemo.ErrInvalidParameter))

			_, err = engine.New().Simulate(params, hemo.RunOptions{StepsPerBeat: 400, Beats: -1})
			Expect(err).To(MatchError(hemo.ErrInvalidParameter))
		})
	})

	Describe("numerical instability", func() {
		It("aborts with the failing step when the state diverges", func() {
			params.Compliance = 1e-12

			_, err := engine.New().Simulate(params, opts)
			Expect(err).To(MatchError(hemo.ErrUnstable))

			var stepErr *hemo.StepError
			Expect(errors.As(err, &stepErr)).To(BeTrue())
			Expect(stepErr.Step).To(BeNumerically(">=", 0))
			Expect(stepErr.Step).To(BeNumerically("<", opts.Beats*opts.StepsPerBeat))
			Expect(stepErr.Quantity).NotTo(BeEmpty())
		})
	})

	Describe("normal scenario", func() {
		It("produces internally consistent metrics", func() {
			result, err := engine.New().Simulate(params, opts)
			Expect(err).NotTo(HaveOccurred())

			m := result.Metrics
			Expect(m.EDV).To(BeNumerically(">=", m.ESV))
			Expect(m.ESV).To(BeNumerically(">=", 0))
			Expect(m.DBP).To(BeNumerically(">=", 0))
			Expect(m.SBP).To(BeNumerically(">", m.DBP))
			Expect(m.MAP).To(And(
				BeNumerically(">=", m.DBP),
				BeNumerically("<=", m.SBP),
			))
			Expect(m.PP).To(Equal(m.SBP - m.DBP))
			Expect(m.CO).To(Equal(params.HeartRate * m.SV / 1000))
			Expect(m.EF).To(And(
				BeNumerically(">", 0),
				BeNumerically("<=", 100),
			))
		})
	})

	Describe("afterload response", func() {
		It("raises mean pressure and does not raise stroke volume when resistance doubles", func() {
			base, err := engine.New().Simulate(params, opts)
			Expect(err).NotTo(HaveOccurred())

			params.VascularResistance *= 2
			loaded, err := engine.New().Simulate(params, opts)
			Expect(err).NotTo(HaveOccurred())

			Expect(loaded.Metrics.MAP).To(BeNumerically(">", base.Metrics.MAP))
			Expect(loaded.Metrics.SV).To(BeNumerically("<=", base.Metrics.SV))
		})
	})

	Describe("beat count stability", func() {
		It("changes pressure metrics by less than 5% when beats double", func() {
			short, err := engine.New().Simulate(params, opts)
			Expect(err).NotTo(HaveOccurred())

			opts.Beats = 16
			long, err := engine.New().Simulate(params, opts)
			Expect(err).NotTo(HaveOccurred())

			Expect(relChange(long.Metrics.MAP, short.Metrics.MAP)).To(BeNumerically("<", 0.05))
			Expect(relChange(long.Metrics.SBP, short.Metrics.SBP)).To(BeNumerically("<", 0.05))
			Expect(relChange(long.Metrics.DBP, short.Metrics.DBP)).To(BeNumerically("<", 0.05))
		})
	})
})

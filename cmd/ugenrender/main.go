// Command ugenrender renders a swept, filtered wavetable tone to a WAV file.
//
// A harmonic sine table drives an oscillator. Its output passes through a
// one-pole low-pass and a second-order Butterworth high-pass whose
// frequencies sweep linearly over the render.
//
// Usage:
//
//	ugenrender [flags] output.wav
//
// Examples:
//
//	ugenrender out.wav
//	ugenrender -duration 4 -lp 3000:300 -hp 20:800 out.wav
//	ugenrender -partials 1,0,0.333,0,0.2 -interp hermite -log-interval 0 out.wav
//	ugenrender -analyze
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ugen/dsp/filter/butterworth"
	"github.com/cwbudde/algo-ugen/dsp/filter/design/pass"
	"github.com/cwbudde/algo-ugen/dsp/filter/tone"
	"github.com/cwbudde/algo-ugen/dsp/interp"
	"github.com/cwbudde/algo-ugen/dsp/table"
	"github.com/cwbudde/algo-ugen/internal/render"
	"github.com/cwbudde/algo-ugen/measure/response"
)

func main() {
	def := render.DefaultConfig()

	rate := flag.Int("rate", def.SampleRate, "sample rate in Hz")
	block := flag.Int("block", def.BlockSize, "control period in samples")
	duration := flag.Float64("duration", def.DurationSec, "render length in seconds")
	bits := flag.Int("bits", def.BitDepth, "PCM bit depth (16, 24 or 32)")
	freq := flag.Float64("freq", def.ToneHz, "oscillator frequency in Hz")
	amp := flag.Float64("amp", def.Amplitude, "oscillator amplitude")
	size := flag.Int("table-size", def.TableSize, "wavetable size (power of two, or power of two plus one)")
	partials := flag.String("partials", formatList(def.Partials), "comma-separated harmonic strengths")
	interpName := flag.String("interp", def.Interpolation.String(), "table interpolation: truncate, linear or hermite")
	lp := flag.String("lp", formatSweep(def.HalfPower), "low-pass half-power sweep from:to in Hz")
	lpMode := flag.String("lp-mode", def.HalfPowerMode.String(), "low-pass coefficients: exponential or half_power")
	hp := flag.String("hp", formatSweep(def.Cutoff), "high-pass cutoff sweep from:to in Hz")
	logInterval := flag.Float64("log-interval", def.LogInterval, "parameter log period in seconds written to stderr (0 disables)")
	analyze := flag.Bool("analyze", false, "print table partials and filter responses instead of rendering")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ugenrender [flags] output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Renders a wavetable tone through a swept low-pass and high-pass.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ugenrender out.wav\n")
		fmt.Fprintf(os.Stderr, "  ugenrender -duration 4 -lp 3000:300 -hp 20:800 out.wav\n")
		fmt.Fprintf(os.Stderr, "  ugenrender -analyze\n")
	}
	flag.Parse()

	cfg := def
	cfg.SampleRate = *rate
	cfg.BlockSize = *block
	cfg.DurationSec = *duration
	cfg.BitDepth = *bits
	cfg.ToneHz = *freq
	cfg.Amplitude = *amp
	cfg.TableSize = *size
	cfg.LogInterval = *logInterval

	var err error
	if cfg.Partials, err = parseList(*partials); err != nil {
		fail("-partials: %v", err)
	}
	if cfg.Interpolation, err = parseInterp(*interpName); err != nil {
		fail("-interp: %v", err)
	}
	if cfg.HalfPowerMode, err = parseOnePoleMode(*lpMode); err != nil {
		fail("-lp-mode: %v", err)
	}
	if cfg.HalfPower, err = parseSweep(*lp); err != nil {
		fail("-lp: %v", err)
	}
	if cfg.Cutoff, err = parseSweep(*hp); err != nil {
		fail("-hp: %v", err)
	}

	if *analyze {
		if err := printAnalysis(cfg); err != nil {
			fail("%v", err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, flag.Arg(0)); err != nil {
		fail("%v", err)
	}
}

func run(cfg render.Config, path string) error {
	var opts []render.Option
	if cfg.LogInterval > 0 {
		opts = append(opts, render.WithParameterLog(os.Stderr))
	}

	r, err := render.New(cfg, opts...)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	frames, err := r.WriteWAV(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s: %d frames, %d Hz, %d bit\n", path, frames, cfg.SampleRate, cfg.BitDepth)
	return nil
}

func printAnalysis(cfg render.Config) error {
	tbl, err := table.BuildSine(cfg.TableSize, cfg.Partials)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if count := measurablePartials(tbl.Period(), len(cfg.Partials)); count > 0 {
		measured, err := response.Partials(tbl, count)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "Harmonic\tStrength\tMeasured\n")
		fmt.Fprintf(tw, "--------\t--------\t--------\n")
		for k, m := range measured {
			fmt.Fprintf(tw, "%d\t%.6f\t%.6f\n", k+1, cfg.Partials[k], m)
		}
	} else {
		fmt.Fprintf(tw, "Harmonics\tnot measurable with a %d-point cycle\n", tbl.Period())
	}
	fmt.Fprintf(tw, "\nPeak\t%.6f\t\n\n", tbl.Peak())

	sr := float64(cfg.SampleRate)
	fmt.Fprintf(tw, "Filter\tSetting [Hz]\tGain at setting [dB]\tGain at tone [dB]\n")
	fmt.Fprintf(tw, "------\t------------\t--------------------\t-----------------\n")
	for _, hz := range []float64{cfg.HalfPower.From, cfg.HalfPower.To} {
		f, err := tone.New(sr, tone.WithHalfPowerHz(hz), tone.WithCoefficientMode(cfg.HalfPowerMode))
		if err != nil {
			return err
		}
		spec, err := response.Measure(f, sr, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "low-pass (%s)\t%.1f\t%.3f\t%.3f\n", cfg.HalfPowerMode, f.EffectiveHalfPowerHz(),
			spec.AtHzDB(f.EffectiveHalfPowerHz()), spec.AtHzDB(cfg.ToneHz))
	}
	for _, hz := range []float64{cfg.Cutoff.From, cfg.Cutoff.To} {
		f, err := butterworth.New(sr, butterworth.WithCutoffHz(hz))
		if err != nil {
			return err
		}
		spec, err := response.Measure(f, sr, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "high-pass\t%.1f\t%.3f\t%.3f\n", f.EffectiveCutoffHz(),
			spec.AtHzDB(f.EffectiveCutoffHz()), spec.AtHzDB(cfg.ToneHz))
	}

	return tw.Flush()
}

// measurablePartials is how many of n partials a period-point cycle can
// resolve. Harmonic k needs k < period/2; periods below 4 resolve none.
func measurablePartials(period, n int) int {
	return max(0, min(n, period/2-1))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func parseList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func formatList(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', 4, 64)
	}
	return strings.Join(parts, ",")
}

func parseSweep(s string) (render.Sweep, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		to = from
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(from), 64)
	if err != nil {
		return render.Sweep{}, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(to), 64)
	if err != nil {
		return render.Sweep{}, err
	}
	return render.Sweep{From: a, To: b}, nil
}

func formatSweep(s render.Sweep) string {
	return fmt.Sprintf("%g:%g", s.From, s.To)
}

func parseInterp(name string) (interp.Mode, error) {
	for _, m := range []interp.Mode{interp.ModeTruncate, interp.ModeLinear, interp.ModeHermite} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation %q", name)
}

func parseOnePoleMode(name string) (pass.OnePoleMode, error) {
	for _, m := range []pass.OnePoleMode{pass.OnePoleExponential, pass.OnePoleHalfPower} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown low-pass mode %q", name)
}

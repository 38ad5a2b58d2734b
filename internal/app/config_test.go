package app

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"sandbox/internal/sims/sand"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given default flags", t, func() {
		cfg := NewConfig()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)

		Convey("explicit flags override defaults", func() {
			err := cfg.Parse(fs, []string{"-w", "40", "-h", "30", "-brush", "2"})
			So(err, ShouldBeNil)
			So(cfg.Width, ShouldEqual, 40)
			So(cfg.Height, ShouldEqual, 30)
			So(cfg.Brush, ShouldEqual, 2)
		})

		Convey("a non-positive size is rejected", func() {
			err := cfg.Parse(fs, []string{"-w", "0"})
			So(err, ShouldNotBeNil)
		})

		Convey("out-of-range host settings are normalised", func() {
			err := cfg.Parse(fs, []string{"-scale", "-2", "-tps", "0", "-brush", "-1"})
			So(err, ShouldBeNil)
			So(cfg.Scale, ShouldEqual, 1)
			So(cfg.TPS, ShouldEqual, 60)
			So(cfg.Brush, ShouldEqual, 0)
		})
	})

	Convey("Given a JSON config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "sand.json")
		data := `{"width": 80, "height": 60, "seed": 9, "rules": {"fire_life": "20"}}`
		So(os.WriteFile(path, []byte(data), 0o644), ShouldBeNil)

		cfg := NewConfig()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)

		Convey("file values apply and flags still win", func() {
			err := cfg.Parse(fs, []string{"-config", path, "-h", "50"})
			So(err, ShouldBeNil)
			So(cfg.Width, ShouldEqual, 80)
			So(cfg.Height, ShouldEqual, 50)
			So(cfg.Seed, ShouldEqual, 9)

			Convey("and the sim options feed the world config", func() {
				simCfg := sand.FromMap(cfg.SimOptions())
				So(simCfg.Width, ShouldEqual, 80)
				So(simCfg.Height, ShouldEqual, 50)
				So(simCfg.Seed, ShouldEqual, 9)
				So(simCfg.Params.FireLife, ShouldEqual, 20)
			})
		})

		Convey("a missing file is reported", func() {
			err := cfg.LoadFile(filepath.Join(dir, "missing.json"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "[LoadFile] failed to read file")
		})

		Convey("malformed JSON is reported", func() {
			bad := filepath.Join(dir, "bad.json")
			So(os.WriteFile(bad, []byte("{"), 0o644), ShouldBeNil)
			err := cfg.LoadFile(bad)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "failed to unmarshal")
		})
	})

	Convey("Log levels parse case-insensitively", t, func() {
		So(ParseLevel("DEBUG"), ShouldEqual, slog.LevelDebug)
		So(ParseLevel("warn"), ShouldEqual, slog.LevelWarn)
		So(ParseLevel("error"), ShouldEqual, slog.LevelError)
		So(ParseLevel("bogus"), ShouldEqual, slog.LevelInfo)
	})
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"michelo851a1203/hexbounce/sim"
)

// EnvPrefix is prepended to every key looked up in .env files and the environment.
const EnvPrefix = "HEXBOUNCE_"

// Config is everything a host needs to start a run.
type Config struct {
	Width, Height int // drawing surface, fixed for the run
	TPS           int // frames per second
	Sim           sim.Config
	Sound         bool
	Debug         bool
	Addr          string // websocket listen address
}

// Default is the 800×600 demo at 60 frames per second.
func Default() Config {
	c := Config{
		Width:  800,
		Height: 600,
		TPS:    60,
		Sound:  true,
		Addr:   ":8080",
	}
	c.Sim = sim.DefaultConfig(float64(c.Width), float64(c.Height))
	return c
}

type floatField struct {
	key, flag, usage string
	ptr              *float64
}

type intField struct {
	key, flag, usage string
	ptr              *int
}

type boolField struct {
	key, flag, usage string
	ptr              *bool
}

func (c *Config) floats() []floatField {
	return []floatField{
		{"HEX_RADIUS", "hex-radius", "hexagon circumradius in pixels", &c.Sim.HexRadius},
		{"BALL_RADIUS", "ball-radius", "ball radius in pixels", &c.Sim.BallRadius},
		{"GRAVITY", "gravity", "downward acceleration per frame", &c.Sim.Gravity},
		{"AIR_RESISTANCE", "air-resistance", "velocity multiplier per frame, (0,1]", &c.Sim.AirResistance},
		{"ROTATION_SPEED", "rotation-speed", "hexagon rotation in radians per frame", &c.Sim.RotationSpeed},
		{"RESTITUTION", "restitution", "bounce elasticity, >1 adds energy", &c.Sim.Restitution},
		{"FRICTION", "friction", "velocity multiplier after a bounce, [0,1]", &c.Sim.Friction},
	}
}

func (c *Config) ints() []intField {
	return []intField{
		{"WIDTH", "width", "surface width in pixels", &c.Width},
		{"HEIGHT", "height", "surface height in pixels", &c.Height},
		{"TPS", "tps", "frames per second", &c.TPS},
	}
}

func (c *Config) bools() []boolField {
	return []boolField{
		{"SOUND", "sound", "play a tone on each bounce", &c.Sound},
		{"DEBUG", "debug", "write logs to logs/hexbounce.log", &c.Debug},
	}
}

// Load starts from Default, applies each existing .env file in order,
// then HEXBOUNCE_* variables from the process environment. Missing files
// are skipped.
func Load(files ...string) (Config, error) {
	c := Default()

	values := make(map[string]string)
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		env, err := godotenv.Read(f)
		if err != nil {
			return c, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range env {
			values[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := values[EnvPrefix+key]
		return v, ok
	}

	if err := c.apply(lookup); err != nil {
		return c, err
	}
	return c, c.Finalize()
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	for _, f := range c.floats() {
		if v, ok := lookup(f.key); ok {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
			}
			*f.ptr = n
		}
	}
	for _, f := range c.ints() {
		if v, ok := lookup(f.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
			}
			*f.ptr = n
		}
	}
	for _, f := range c.bools() {
		if v, ok := lookup(f.key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, f.key, err)
			}
			*f.ptr = b
		}
	}
	if v, ok := lookup("ADDR"); ok {
		c.Addr = v
	}
	return nil
}

// BindFlags registers a flag per setting, defaulting to the loaded values.
// Call Finalize after parsing.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	for _, f := range c.floats() {
		fs.Float64Var(f.ptr, f.flag, *f.ptr, f.usage)
	}
	for _, f := range c.ints() {
		fs.IntVar(f.ptr, f.flag, *f.ptr, f.usage)
	}
	for _, f := range c.bools() {
		fs.BoolVar(f.ptr, f.flag, *f.ptr, f.usage)
	}
	fs.StringVar(&c.Addr, "addr", c.Addr, "websocket listen address")
}

// Finalize centers the hexagon on the surface and validates everything.
func (c *Config) Finalize() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface %dx%d must be positive", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	c.Sim.CenterX = float64(c.Width) / 2
	c.Sim.CenterY = float64(c.Height) / 2
	return c.Sim.Validate()
}

// Bounds returns the surface size as floats.
func (c Config) Bounds() (width, height float64) {
	return float64(c.Width), float64(c.Height)
}

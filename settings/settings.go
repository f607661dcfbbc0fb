package settings

import (
	"os"

	"github.com/oomph-ac/treefall/game"
	"github.com/oomph-ac/treefall/oerror"
	"github.com/pelletier/go-toml"
)

// Settings contains all settings that can be configured for a falling tree simulation.
type Settings struct {
	Simulation struct {
		// WorldSeed is the session seed that every falling tree derives its random stream from.
		WorldSeed int64
		// TicksPerSecond is the rate the host loop steps falling trees at.
		TicksPerSecond int
	}
	Physics Physics
}

// Physics holds the constants used by the physics animation handler.
type Physics struct {
	Gravity       float64
	AirDrag       float64
	FluidDrag     float64
	FluidBuoyancy float64
	CutImpulse    float64
	SpinScale     float64

	MinInertialMass float64
	MaxInertialMass float64

	// DefaultBranchRadius is the footprint radius used when the cut position is not a known branch.
	DefaultBranchRadius int
	// MaxAge is the amount of ticks after which a falling tree that never landed dies.
	MaxAge uint64
}

// InertialMass clamps a wood volume into the configured inertial mass range.
func (p Physics) InertialMass(woodVolume float64) float64 {
	return game.ClampFloat(woodVolume, p.MinInertialMass, p.MaxInertialMass)
}

// DefaultPhysics returns the default physics constants.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:             game.TreeGravity,
		AirDrag:             game.AirDrag,
		FluidDrag:           game.FluidDrag,
		FluidBuoyancy:       game.FluidBuoyancy,
		CutImpulse:          game.CutImpulse,
		SpinScale:           game.SpinScale,
		MinInertialMass:     game.MinInertialMass,
		MaxInertialMass:     game.MaxInertialMass,
		DefaultBranchRadius: game.DefaultBranchRadius,
		MaxAge:              game.MaxFallingTicks,
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{Physics: DefaultPhysics()}
	s.Simulation.TicksPerSecond = 20
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return oerror.New("settings file already exists")
	}
	data, err := toml.Marshal(DefaultSettings())
	if err != nil {
		return oerror.New("failed encoding default settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oerror.New("failed creating settings file: %v", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Fields missing from the file keep their default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, oerror.New("settings file doesn't exist: %v", err)
	} else if err != nil {
		return Settings{}, oerror.New("error reading settings: %v", err)
	}

	s := DefaultSettings()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, oerror.New("error decoding settings: %v", err)
	}
	if s.Physics.MinInertialMass <= 0 || s.Physics.MaxInertialMass < s.Physics.MinInertialMass {
		return Settings{}, oerror.New("invalid inertial mass range [%v, %v]", s.Physics.MinInertialMass, s.Physics.MaxInertialMass)
	}
	return s, nil
}

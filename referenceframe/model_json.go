package referenceframe

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/armkin/armkin/spatialmath"
	"github.com/armkin/armkin/utils"
)

// ChainConfigJSON represents all supported fields in a chain description file. Joint limits and the base
// heading are in degrees; the Chain API works in radians.
type ChainConfigJSON struct {
	Name   string        `json:"name"`
	Base   *BaseConfig   `json:"base,omitempty"`
	Joints []JointConfig `json:"joints"`
}

// BaseConfig places the base of a chain: a position and a heading about Z.
type BaseConfig struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Theta float64 `json:"theta,omitempty"`
}

// JointConfig describes one joint and the link it drives. Missing limits default to +/-180 degrees.
type JointConfig struct {
	ID     string   `json:"id,omitempty"`
	Length float64  `json:"length"`
	Axis   string   `json:"axis,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// UnmarshalChainJSON parses the given JSON data into a chain.
func UnmarshalChainJSON(jsonData []byte) (*Chain, error) {
	// empty data probably means that the arm has no chain description
	if len(jsonData) == 0 {
		return nil, ErrNoChainInformation
	}
	cfg := &ChainConfigJSON{}
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json file")
	}
	return cfg.ParseConfig()
}

// ParseChainJSONFile will read a given file and then parse the contained JSON data.
func ParseChainJSONFile(filename string) (*Chain, error) {
	//nolint:gosec
	jsonData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read json file")
	}
	return UnmarshalChainJSON(jsonData)
}

// ParseConfig converts the config into a Chain.
func (cfg *ChainConfigJSON) ParseConfig() (*Chain, error) {
	if len(cfg.Joints) == 0 {
		return nil, ErrNoChainInformation
	}
	lengths := make([]float64, 0, len(cfg.Joints))
	opts := []ChainOption{WithName(cfg.Name)}
	if cfg.Base != nil {
		opts = append(opts, WithBase(spatialmath.Compose(
			spatialmath.Translate(cfg.Base.X, cfg.Base.Y, cfg.Base.Z),
			spatialmath.RotateZ(utils.DegToRad(cfg.Base.Theta)),
		)))
	}
	for i, jc := range cfg.Joints {
		lengths = append(lengths, jc.Length)
		axis, err := ParseAxis(jc.Axis)
		if err != nil {
			return nil, errors.Wrapf(err, "joint %d", i)
		}
		limit := DefaultLimit()
		if jc.Min != nil {
			limit.Min = utils.DegToRad(*jc.Min)
		}
		if jc.Max != nil {
			limit.Max = utils.DegToRad(*jc.Max)
		}
		opts = append(opts, WithJointName(i, jc.ID), WithJointAxis(i, axis), WithJointLimit(i, limit))
	}
	return NewChain(lengths, opts...)
}

// Config describes the chain in the file format read by UnmarshalChainJSON. Only the translation and the
// rotation about Z of the base are kept.
func (c *Chain) Config() *ChainConfigJSON {
	basePose := spatialmath.NewPoseFromTransform(c.base)
	pt := basePose.Point()
	cfg := &ChainConfigJSON{
		Name: c.name,
		Base: &BaseConfig{X: pt.X, Y: pt.Y, Z: pt.Z, Theta: utils.RadToDeg(basePose.Heading())},
	}
	for _, j := range c.joints {
		lo, hi := utils.RadToDeg(j.Limit.Min), utils.RadToDeg(j.Limit.Max)
		cfg.Joints = append(cfg.Joints, JointConfig{
			ID:     j.Name,
			Length: j.Length,
			Axis:   j.Axis.String(),
			Min:    &lo,
			Max:    &hi,
		})
	}
	return cfg
}

// MarshalJSON serializes a Chain in the same format it is read from.
func (c *Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Config())
}

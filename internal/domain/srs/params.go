package srs

// Params defines all configurable parameters for the SM-2 scheduling algorithm.
type Params struct {
	// MinEaseFactor is the floor for the ease factor after an update.
	MinEaseFactor float64

	// PassingQuality is the lowest quality score that counts as a
	// successful recall. Scores below it reset the card.
	PassingQuality int

	// FirstInterval is the interval in days after the first successful recall.
	FirstInterval int

	// SecondInterval is the interval in days after the second successful recall.
	SecondInterval int

	// LapseInterval is the interval in days applied after a failed recall.
	LapseInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values leave the corresponding default in place.
type ParamsConfig struct {
	MinEaseFactor  float64
	PassingQuality int
	FirstInterval  int
	SecondInterval int
	LapseInterval  int
}

// NewDefaultParams creates a new Params instance with the standard SM-2 values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:  1.3,
		PassingQuality: 3,
		FirstInterval:  1,
		SecondInterval: 6,
		LapseInterval:  1,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.PassingQuality > 0 {
		params.PassingQuality = config.PassingQuality
	}
	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}
	if config.LapseInterval > 0 {
		params.LapseInterval = config.LapseInterval
	}

	return params
}

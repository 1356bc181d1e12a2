package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	CryVolume  float64 `yaml:"cryVolume"`
	Muted      bool    `yaml:"muted"`
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		CryVolume:  0.8,
	}
}

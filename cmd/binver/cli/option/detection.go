package option

import (
	"fmt"

	"github.com/anchore/clio"
	"github.com/anchore/fangs"

	"github.com/binver/binver/config"
)

var _ interface {
	fangs.FlagAdder
	fangs.PostLoader
} = (*Detection)(nil)

type Detection struct {
	Strategy string `json:"strategy" yaml:"strategy" mapstructure:"strategy"`
	Tools    Tools  `json:"tools" yaml:"tools" mapstructure:"tools"`
}

func DefaultDetection() Detection {
	return Detection{}
}

func (o *Detection) AddFlags(flags clio.FlagSet) {
	flags.StringVarP(&o.Strategy, "strategy", "s",
		fmt.Sprintf("The ecosystem detection strategy, overriding config file settings (available: %s, %s, %s)",
			config.FirstAvailable, config.PreferConfig, config.OnlyConfig))
}

func (o *Detection) PostLoad() error {
	if o.Strategy == "" {
		return nil
	}

	strategy, err := config.ParseDetectStrategy(o.Strategy)
	if err != nil {
		return err
	}

	o.Strategy = strategy.String()
	return nil
}

package option

import (
	"github.com/anchore/clio"
)

type Verification struct {
	Checksums string `json:"checksums" yaml:"checksums" mapstructure:"checksums"`
}

func (o *Verification) AddFlags(flags clio.FlagSet) {
	flags.StringVarP(&o.Checksums, "checksums", "",
		"Path to the checksum manifest (defaults to checksums.txt next to the file being verified)")
}

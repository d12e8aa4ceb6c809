package option

import (
	"github.com/anchore/clio"
)

type Fetch struct {
	DestDir      string `json:"dest" yaml:"dest" mapstructure:"dest"`
	ChecksumURL  string `json:"checksum-url" yaml:"checksum-url" mapstructure:"checksum-url"`
	ChecksumFile string `json:"checksum-file" yaml:"checksum-file" mapstructure:"checksum-file"`
}

func DefaultFetch() Fetch {
	return Fetch{
		DestDir: ".",
	}
}

func (o *Fetch) AddFlags(flags clio.FlagSet) {
	flags.StringVarP(&o.DestDir, "dest", "d", "Directory to download into")
	flags.StringVarP(&o.ChecksumURL, "checksum-url", "",
		"URL of the checksum manifest; may contain the {checksum_file} token")
	flags.StringVarP(&o.ChecksumFile, "checksum-file", "",
		"Name of the checksum manifest file")
}

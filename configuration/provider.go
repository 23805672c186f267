package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// flagSetProvider is a koanf provider that reads the flags of a pflag.FlagSet with lower cased keys.
// Flags that were set on the command line always win. The default value of an unset flag is only used if the key
// does not exist in the wrapped koanf instance yet, so defaults never override values loaded from files.
type flagSetProvider struct {
	flagSet *flag.FlagSet
	delim   string
	loaded  *koanf.Koanf
}

// lowerPosflagProvider returns a provider for the given FlagSet. Flag names are split into nested keys at delim.
func lowerPosflagProvider(flagSet *flag.FlagSet, delim string, loaded *koanf.Koanf) *flagSetProvider {
	return &flagSetProvider{
		flagSet: flagSet,
		delim:   delim,
		loaded:  loaded,
	}
}

// Read returns the nested config map of the flags.
func (p *flagSetProvider) Read() (map[string]interface{}, error) {
	values := make(map[string]interface{})
	p.flagSet.VisitAll(func(f *flag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.loaded == nil || p.loaded.Exists(key)) {
			return
		}

		values[key] = posflag.FlagVal(p.flagSet, f)
	})

	return maps.Unflatten(values, p.delim), nil
}

// ReadBytes is not supported by the flag set provider.
func (p *flagSetProvider) ReadBytes() ([]byte, error) {
	return nil, ierrors.New("flag set provider does not support this method")
}

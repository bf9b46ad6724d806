package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// filterArgs keeps only the flags this package understands (and their values)
// so parsing here never trips over flags owned by other components. Both
// "-f value" and "-f=value" forms are handled.
func filterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := known[name]; ok {
				kept = append(kept, arg)
			}
			continue
		}

		if _, ok := known[arg]; ok {
			kept = append(kept, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				kept = append(kept, args[i+1])
				i++
			}
		}
	}
	return kept
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   backend base URL (default from Config)
//	-r string   OAuth redirect URI (default from Config)
//	-d string   data directory for session db and identity key
//	-t int      backend request timeout in seconds (default from Config)
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-b", "-r", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendURL, "b", cfg.BackendURL, "backend base URL")
	fs.StringVar(&cfg.RedirectURI, "r", cfg.RedirectURI, "OAuth redirect URI")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	timeoutSecs := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSecs) * time.Second
}

// jsonConfigPath inspects command-line arguments and extracts the config file
// path provided via the -c or -config flags. Other arguments are ignored so
// this cannot interfere with flags owned by parseFlags. Empty means "no JSON
// config".
func jsonConfigPath() string {
	var path string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return path
}

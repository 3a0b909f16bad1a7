package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const (
	Version   = "1.1.0"
	BuildTime = "2024-06-03 09:40:00"
	Program   = "injmerge"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix(fmt.Sprintf("[%s-%s] ", Program, Version))

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, helpText)
		os.Exit(2)
	}
}

func main() {
	var (
		output   = flag.String("output", MERGED, "merged output file")
		group    = flag.String("group", GROUP, "group holding the injection datasets")
		maxTheta = flag.Float64("max-theta", DefaultMaxTheta, "maximum theta angle (degrees)")
		fLower   = flag.Float64("f-lower", 0, "reference frequency (Hz)")
		config   = flag.String("config", "", "load settings from a configuration file")
		elist    = flag.Bool("list", false, "print injection summary instead of merging")
		flist    = flag.Bool("list-files", false, "print dataset layout instead of merging")
		version  = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Fprintf(os.Stderr, "%s-%s (%s)\n", Program, Version, BuildTime)
		return
	}

	s := Default()
	if *config != "" {
		if err := s.Load(*config); err != nil {
			Exit(err)
		}
	}
	// flags set on the command line override the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			s.Output = *output
		case "group":
			s.Group = *group
		case "max-theta":
			s.MaxTheta = *maxTheta
		case "f-lower":
			s.FLower = *fLower
		}
	})
	if flag.NArg() > 0 {
		s.Files = flag.Args()
	}

	if *flist {
		Exit(ListFiles(s))
		return
	}
	if *elist {
		Exit(ListInjections(s))
		return
	}
	Exit(checkError(createMerged(s), nil))
}

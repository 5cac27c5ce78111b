package cmd

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/calebcase/notation"
	"github.com/calebcase/notation/decimal"
	"github.com/calebcase/notation/prime"
)

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	log.SetLevel(logrus.InfoLevel)

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// fields describes how n sees value.
func fields(n notation.Notation, input string, value decimal.Decimal) logrus.Fields {
	f := logrus.Fields{
		"notation": n.Name(),
		"input":    input,
		"value":    value.String(),
	}

	if _, ok := n.(prime.Notation); !ok || value.IsInf() {
		return f
	}

	abs := value.Abs()
	regime := prime.Classify(abs)
	f["regime"] = regime.String()

	switch regime {
	case prime.Direct:
		f["integer"] = humanize.Comma(int64(abs.Floor().Float64()))
	case prime.Tower2, prime.Tower3:
		f["tower"] = prime.BuildTower(abs)
	}

	return f
}

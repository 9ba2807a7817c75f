package set

import (
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/setlike/set/internal"
)

var logger = log.WithFields(log.Fields{"module": "set"})

// SetLogger replaces the entry composite operations log through.
func SetLogger(entry *log.Entry) {
	logger = entry
}

func logPlan(p internal.Plan, r int, s float64) {
	if !logger.Logger.IsLevelEnabled(log.DebugLevel) {
		return
	}
	logger.WithFields(log.Fields{
		"op":            p.Op.String(),
		"receiver_size": r,
		"other_size":    s,
		"iterate":       p.Iterate.String(),
		"lookups":       p.Lookups,
		"decided":       p.ShortCircuit(),
	}).Debug("set operation planned")
}

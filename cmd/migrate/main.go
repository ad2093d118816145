package main

import (
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"idlepoker-server/internal/config"
	"idlepoker-server/pkg/db"
)

var wait = flag.Duration("wait", time.Second*10, "how long to wait for the database")

func main() {
	flag.Parse()

	waitForDB(config.Instance().PGDSN, *wait)
	db.Migrate()
}

// waitForDB blocks until postgres accepts connections
func waitForDB(dsn string, wait time.Duration) {
	deadline := time.Now().Add(wait)
	for attempt := 1; ; attempt++ {
		dbh, err := db.Open(dsn)
		if err == nil {
			_ = dbh.Close()
			return
		}

		if time.Now().After(deadline) {
			logrus.WithError(err).Fatal("could not connect to database")
		}

		logrus.WithField("attempt", attempt).Debug("database not ready")
		time.Sleep(time.Millisecond * 500)
	}
}

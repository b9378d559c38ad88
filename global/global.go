package global

import (
	"context"
	"log"
	"os"

	"flock_server/graph"

	"github.com/go-playground/validator/v10"
)

// InternalLogger for errors that should never happen in normal circumstances
var InternalLogger *log.Logger

// MonitorLogger for expected noise worth keeping an eye on
var MonitorLogger *log.Logger

// Graph is the follow graph owned by this shard process
var Graph = graph.New()

// Context is the default context
var Context = context.Background()

// Validator validates incoming bodys of data
var Validator = validator.New()

// InitializeLoggers opens the log files for this process role
func InitializeLoggers(role string) error {
	internalErrorsFile, err := os.OpenFile(role+"_internal_errors.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}

	monitorLogsFile, err := os.OpenFile(role+"_monitor_logs.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}

	InternalLogger = log.New(internalErrorsFile, "", log.LstdFlags)
	MonitorLogger = log.New(monitorLogsFile, "", log.LstdFlags)

	return nil
}

func init() {
	// stderr until InitializeLoggers runs
	InternalLogger = log.New(os.Stderr, "", log.LstdFlags)
	MonitorLogger = log.New(os.Stderr, "", log.LstdFlags)
}

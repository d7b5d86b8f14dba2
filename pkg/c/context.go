package c

type Key string

const (
	MenagerieContextBootTime      Key = "boot_time"
	MenagerieContextLogger        Key = "logger"
	MenagerieContextCorrelationId Key = "correlation_id"
)

package config

import (
	"fmt"
	"strings"
	"time"
)

// SubscriberConfig describes a JetStream pull consumer on the inventory stream.
// An empty Consumer means an ephemeral consumer that only sees new events unless DeliverAll is set.
type SubscriberConfig struct {
	Url        string        `koanf:"url"`
	Stream     string        `koanf:"stream"`
	Subject    string        `koanf:"subject"`
	Consumer   string        `koanf:"consumer"`
	DeliverAll bool          `koanf:"deliverall"`
	Batch      int           `koanf:"batch"`
	Timeout    time.Duration `koanf:"timeout"`
	Interval   time.Duration `koanf:"interval"`
}

func (c *SubscriberConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Events ---\n")
	b.WriteString(fmt.Sprintf("  url: %s\n", MaskURL(c.Url)))
	b.WriteString(fmt.Sprintf("  stream: %s, subject: %s, consumer: %q\n", c.Stream, c.Subject, c.Consumer))
	b.WriteString(fmt.Sprintf("  batch: %d, timeout: %s, interval: %s\n", c.Batch, c.Timeout, c.Interval))
	return b.String()
}

func (c *SubscriberConfig) Validate() error {
	switch {
	case c.Url == "":
		return fmt.Errorf("events.url is not configured")
	case c.Stream == "":
		return fmt.Errorf("events.stream is not configured")
	case c.Subject == "":
		return fmt.Errorf("events.subject is not configured")
	case c.Batch <= 0:
		return fmt.Errorf("events.batch must be greater than 0")
	case c.Timeout <= 0:
		return fmt.Errorf("events.timeout must be greater than 0")
	case c.Interval <= 0:
		return fmt.Errorf("events.interval must be greater than 0")
	}
	return nil
}

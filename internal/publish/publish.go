// Package publish streams container security records to a NATS subject.
package publish

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/nats-io/nats.go"
)

// ErrSubjectRequired is returned when no subject is given.
var ErrSubjectRequired = errors.New("subject is required")

// Conn is the subset of *nats.Conn used by Publisher.
type Conn interface {
	Publish(subject string, data []byte) error
	Flush() error
	Close()
}

// Publisher encodes records as JSON and publishes one message per record.
type Publisher struct {
	conn      Conn
	subject   string
	published int
}

// Connect dials the NATS server at url and returns a Publisher for subject.
func Connect(url, subject string, opts ...nats.Option) (*Publisher, error) {
	if subject == "" {
		return nil, ErrSubjectRequired
	}

	opts = append([]nats.Option{nats.Name("tiocs")}, opts...)

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}

	return New(conn, subject)
}

// New wraps an existing connection.
func New(conn Conn, subject string) (*Publisher, error) {
	if subject == "" {
		return nil, ErrSubjectRequired
	}

	return &Publisher{conn: conn, subject: subject}, nil
}

// Publish sends a single record.
func (p *Publisher) Publish(record cs.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", p.subject, err)
	}

	p.published++

	return nil
}

// PublishAll drains the iterator, publishing every record. It stops at the
// first iterator or publish error and returns the count sent so far.
func (p *Publisher) PublishAll(it *cs.Iterator[cs.Record]) (int, error) {
	start := p.published

	err := it.ForEach(p.Publish)

	return p.published - start, err
}

// Published returns the number of records sent since creation.
func (p *Publisher) Published() int {
	return p.published
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() error {
	defer p.conn.Close()

	if err := p.conn.Flush(); err != nil {
		return fmt.Errorf("flushing: %w", err)
	}

	return nil
}

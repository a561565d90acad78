package publishers

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRegistry(t *testing.T, name, raw string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadRegistryEnabledFilter(t *testing.T) {
	path := writeRegistry(t, "publishers.yaml", `
publishers:
  - id: http1
    type: http
    enabled: false
    http:
      url: https://example.com
  - id: http2
    type: http
    enabled: true
    http:
      url: https://example.com/2
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	enabled := reg.Enabled()
	if len(enabled) != 1 || enabled[0].ID != "http2" {
		t.Fatalf("expected only http2 enabled, got %#v", enabled)
	}
	if len(reg.All()) != 2 {
		t.Fatalf("expected 2 publishers, got %d", len(reg.All()))
	}
}

func TestLoadRegistryCloudSinks(t *testing.T) {
	path := writeRegistry(t, "publishers.yml", `
publishers:
  - id: queue
    type: SQS
    sqs:
      uri: " https://sqs.ap-northeast-2.amazonaws.com/1/quotes "
      region: ap-northeast-2
      access_key_id: AKIA
      secret_access_key: secret
  - id: topic
    type: sns
    sns:
      topic_arn: arn:aws:sns:ap-northeast-2:1:quotes
      region: ap-northeast-2
  - id: gcp
    type: pubsub
    pubsub:
      project_id: proj
      topic: quotes
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	queue, ok := reg.ByID("queue")
	if !ok || queue.Type != TypeSQS {
		t.Fatalf("queue missing or wrong type: %#v", queue)
	}
	if queue.SQS.QueueURL != "https://sqs.ap-northeast-2.amazonaws.com/1/quotes" {
		t.Fatalf("queue url not trimmed: %q", queue.SQS.QueueURL)
	}
	if queue.SQS.AccessKeyID != "AKIA" || queue.SQS.SecretAccessKey != "secret" {
		t.Fatalf("inline credentials not decoded: %#v", queue.SQS.AWSCredentials)
	}
	if topic, ok := reg.ByID("topic"); !ok || topic.SNS.TopicARN == "" {
		t.Fatalf("topic missing: %#v", topic)
	}
	if gcp, ok := reg.ByID("gcp"); !ok || gcp.PubSub.Topic != "quotes" {
		t.Fatalf("pubsub missing: %#v", gcp)
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	path := writeRegistry(t, "publishers.json", `{"publishers":[{"id":"hook","type":"http","http":{"url":"https://example.com"}}]}`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	cfg, ok := reg.ByID("hook")
	if !ok {
		t.Fatalf("hook missing")
	}
	if cfg.HTTP.Method != "POST" || cfg.HTTP.TimeoutSeconds != httpDefaultTimeoutSeconds {
		t.Fatalf("http defaults not applied: %#v", cfg.HTTP)
	}
}

func TestLoadRegistryRejectsDuplicates(t *testing.T) {
	path := writeRegistry(t, "publishers.yaml", `
publishers:
  - id: hook
    type: http
    http: {url: https://example.com}
  - id: hook
    type: http
    http: {url: https://example.com/2}
`)
	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestValidatePublisherConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  PublisherConfig
	}{
		{"missing id", PublisherConfig{Type: TypeHTTP}},
		{"missing type", PublisherConfig{ID: "x"}},
		{"missing http", PublisherConfig{ID: "h1", Type: TypeHTTP}},
		{"missing sqs region", PublisherConfig{ID: "q", Type: TypeSQS, SQS: &SQSPublisherConfig{QueueURL: "u"}}},
		{"missing sns arn", PublisherConfig{ID: "s", Type: TypeSNS, SNS: &SNSPublisherConfig{Region: "r"}}},
		{"missing pubsub topic", PublisherConfig{ID: "g", Type: TypePubSub, PubSub: &PubSubPublisherConfig{ProjectID: "p"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

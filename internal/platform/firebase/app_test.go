package firebase

import (
	"errors"
	"testing"
)

func TestClientsCloseReturnsNilWhenFirestoreNil(t *testing.T) {
	c := &Clients{}

	if err := c.Close(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestBucketWithoutStorage(t *testing.T) {
	c := &Clients{}

	if _, err := c.Bucket(); !errors.Is(err, ErrNoStorageBucket) {
		t.Fatalf("expected ErrNoStorageBucket, got %v", err)
	}
}

func TestInitializeClientsMissingCredentialsFile(t *testing.T) {
	_, err := InitializeClients(t.Context(), Config{
		ProjectID:                    "demo-test-project",
		GoogleApplicationCredentials: "/nonexistent/credentials.json",
	})
	if err == nil {
		t.Fatal("expected error for unreadable credentials file")
	}
}

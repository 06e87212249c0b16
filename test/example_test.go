package test

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	goEdu "github.com/MrEthical07/goEdu"
	"github.com/MrEthical07/goEdu/api"
)

// ExampleNew builds a client whose session is shared through Redis.
func ExampleNew() {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})

	cfg := goEdu.DefaultConfig()
	cfg.API.BaseURL = "http://localhost:8080/api"
	cfg.Session.Backend = goEdu.BackendRedis
	cfg.Session.RedisAddr = "127.0.0.1:6379"

	client, err := goEdu.New().
		WithConfig(cfg).
		WithRedis(rdb).
		Build()
	if err != nil {
		return
	}
	defer client.Close()
}

// ExampleClient_Login shows sign-in and the error classes callers branch on.
func ExampleClient_Login() {
	var client *goEdu.Client
	ctx := context.Background()

	_, err := client.Login(ctx, api.Credentials{Username: "alice", Password: "secret"})
	var be *goEdu.BusinessError
	switch {
	case errors.As(err, &be):
		fmt.Println("rejected:", be.Message)
	case errors.Is(err, goEdu.ErrTransport):
		fmt.Println("backend unreachable")
	case err != nil:
		fmt.Println(err)
	}
}

// ExampleClient_MetricsSnapshot reads the in-process request counters.
func ExampleClient_MetricsSnapshot() {
	var client *goEdu.Client
	snap := client.MetricsSnapshot()
	_ = snap.Counters[goEdu.MetricUnauthorized]
}

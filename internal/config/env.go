package config

import "os"

func setMissing(env map[string]string) {
	for k, v := range env {
		if _, ok := os.LookupEnv(k); !ok {
			os.Setenv(k, v)
		}
	}
}

func setAll(env map[string]string) {
	for k, v := range env {
		os.Setenv(k, v)
	}
}

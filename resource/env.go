package resource

import (
	"fmt"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Env reads a dotenv-format resource into a key/value map. Nothing is set in
// the process environment; the caller decides what to do with the values.
func (r *Reader) Env(name string) (map[string]string, error) {
	f, err := r.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if errClose := f.Close(); errClose != nil {
			log.Errorf("failed to close resource %s: %v", name, errClose)
		}
	}()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse env resource %s: %w", name, err)
	}
	return vars, nil
}

package store

import (
	"encoding/json"
	"log"
)

// Load decodes the blob stored at key into v. It reports false when the blob
// is missing, unreadable or corrupt so the caller can fall back to its
// default state. v is only written on success.
func Load[T any](kv KeyValueStore, key string, v *T) bool {
	data, ok, err := kv.Get(key)
	if err != nil {
		log.Printf("Error reading %s: %v. Using defaults.", key, err)
		return false
	}
	if !ok {
		return false
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		log.Printf("Error loading %s: %v. Using defaults.", key, err)
		return false
	}
	*v = decoded
	return true
}

// Save encodes v and writes it to key. Failures are logged; play continues.
func Save(kv KeyValueStore, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error saving %s: %v", key, err)
		return
	}
	if err := kv.Set(key, data); err != nil {
		log.Printf("Error writing %s: %v", key, err)
	}
}

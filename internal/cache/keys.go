package cache

// RecordKeyPrefix namespaces persisted records in a shared Redis.
const RecordKeyPrefix = "gamechanger:"

// RecordKey returns the Redis key a record is stored under.
func RecordKey(key string) string {
	return RecordKeyPrefix + key
}

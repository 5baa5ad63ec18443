package redis

import "fmt"

// Key prefix for all tournament data
const keyPrefix = "torneo"

// Entity names used in keys
const (
	entityTournament = "tournament"
	entityPlayer     = "player"
	entityEnrollment = "enrollment"
)

// sequenceKey returns the Redis key holding the last id issued for an entity
func sequenceKey(entity string) string {
	return fmt.Sprintf("%s:seq:%s", keyPrefix, entity)
}

// indexKey returns the Redis key for the ZSET of ids of an entity, scored by id
func indexKey(entity string) string {
	return fmt.Sprintf("%s:idx:%s", keyPrefix, entity)
}

// tournamentKey returns the Redis key for a Tournament (JSON string)
func tournamentKey(id int64) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, entityTournament, id)
}

// playerKey returns the Redis key for a Player (JSON string)
func playerKey(id int64) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, entityPlayer, id)
}

// enrollmentKey returns the Redis key for an Enrollment (HASH)
func enrollmentKey(id int64) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, entityEnrollment, id)
}

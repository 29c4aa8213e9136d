package mapping

import (
	"sort"
	"strings"
)

// CommandDefinition describes the shape of a known Redis command
type CommandDefinition struct {
	Name    string // Canonical uppercase name (e.g. "SET")
	MinArgs int    // Minimum number of arguments after the command name
	MaxArgs int    // Maximum number of arguments, -1 for variadic
	Group   string // STRING, HASH, LIST, SET, ZSET, KEY, SERVER
}

// Commands maps each known command to its definition
// Used by the validator and by the lexer's suggestion machinery
var Commands = map[string]CommandDefinition{
	// ========== GROUP 1: STRING ==========
	"GET":      {Name: "GET", MinArgs: 1, MaxArgs: 1, Group: "STRING"},
	"SET":      {Name: "SET", MinArgs: 2, MaxArgs: -1, Group: "STRING"},
	"GETSET":   {Name: "GETSET", MinArgs: 2, MaxArgs: 2, Group: "STRING"},
	"SETNX":    {Name: "SETNX", MinArgs: 2, MaxArgs: 2, Group: "STRING"},
	"SETEX":    {Name: "SETEX", MinArgs: 3, MaxArgs: 3, Group: "STRING"},
	"APPEND":   {Name: "APPEND", MinArgs: 2, MaxArgs: 2, Group: "STRING"},
	"STRLEN":   {Name: "STRLEN", MinArgs: 1, MaxArgs: 1, Group: "STRING"},
	"INCR":     {Name: "INCR", MinArgs: 1, MaxArgs: 1, Group: "STRING"},
	"DECR":     {Name: "DECR", MinArgs: 1, MaxArgs: 1, Group: "STRING"},
	"INCRBY":   {Name: "INCRBY", MinArgs: 2, MaxArgs: 2, Group: "STRING"},
	"DECRBY":   {Name: "DECRBY", MinArgs: 2, MaxArgs: 2, Group: "STRING"},
	"MGET":     {Name: "MGET", MinArgs: 1, MaxArgs: -1, Group: "STRING"},
	"MSET":     {Name: "MSET", MinArgs: 2, MaxArgs: -1, Group: "STRING"},
	"GETRANGE": {Name: "GETRANGE", MinArgs: 3, MaxArgs: 3, Group: "STRING"},
	"SETRANGE": {Name: "SETRANGE", MinArgs: 3, MaxArgs: 3, Group: "STRING"},

	// ========== GROUP 2: HASH ==========
	"HGET":    {Name: "HGET", MinArgs: 2, MaxArgs: 2, Group: "HASH"},
	"HSET":    {Name: "HSET", MinArgs: 3, MaxArgs: -1, Group: "HASH"},
	"HMSET":   {Name: "HMSET", MinArgs: 3, MaxArgs: -1, Group: "HASH"},
	"HMGET":   {Name: "HMGET", MinArgs: 2, MaxArgs: -1, Group: "HASH"},
	"HDEL":    {Name: "HDEL", MinArgs: 2, MaxArgs: -1, Group: "HASH"},
	"HGETALL": {Name: "HGETALL", MinArgs: 1, MaxArgs: 1, Group: "HASH"},
	"HLEN":    {Name: "HLEN", MinArgs: 1, MaxArgs: 1, Group: "HASH"},
	"HKEYS":   {Name: "HKEYS", MinArgs: 1, MaxArgs: 1, Group: "HASH"},
	"HVALS":   {Name: "HVALS", MinArgs: 1, MaxArgs: 1, Group: "HASH"},
	"HEXISTS": {Name: "HEXISTS", MinArgs: 2, MaxArgs: 2, Group: "HASH"},
	"HINCRBY": {Name: "HINCRBY", MinArgs: 3, MaxArgs: 3, Group: "HASH"},

	// ========== GROUP 3: LIST ==========
	"LPUSH":  {Name: "LPUSH", MinArgs: 2, MaxArgs: -1, Group: "LIST"},
	"RPUSH":  {Name: "RPUSH", MinArgs: 2, MaxArgs: -1, Group: "LIST"},
	"LPOP":   {Name: "LPOP", MinArgs: 1, MaxArgs: 2, Group: "LIST"},
	"RPOP":   {Name: "RPOP", MinArgs: 1, MaxArgs: 2, Group: "LIST"},
	"LLEN":   {Name: "LLEN", MinArgs: 1, MaxArgs: 1, Group: "LIST"},
	"LRANGE": {Name: "LRANGE", MinArgs: 3, MaxArgs: 3, Group: "LIST"},
	"LINDEX": {Name: "LINDEX", MinArgs: 2, MaxArgs: 2, Group: "LIST"},
	"LSET":   {Name: "LSET", MinArgs: 3, MaxArgs: 3, Group: "LIST"},
	"LTRIM":  {Name: "LTRIM", MinArgs: 3, MaxArgs: 3, Group: "LIST"},

	// ========== GROUP 4: SET ==========
	"SADD":      {Name: "SADD", MinArgs: 2, MaxArgs: -1, Group: "SET"},
	"SREM":      {Name: "SREM", MinArgs: 2, MaxArgs: -1, Group: "SET"},
	"SMEMBERS":  {Name: "SMEMBERS", MinArgs: 1, MaxArgs: 1, Group: "SET"},
	"SCARD":     {Name: "SCARD", MinArgs: 1, MaxArgs: 1, Group: "SET"},
	"SISMEMBER": {Name: "SISMEMBER", MinArgs: 2, MaxArgs: 2, Group: "SET"},
	"SPOP":      {Name: "SPOP", MinArgs: 1, MaxArgs: 2, Group: "SET"},

	// ========== GROUP 5: ZSET ==========
	"ZADD":    {Name: "ZADD", MinArgs: 3, MaxArgs: -1, Group: "ZSET"},
	"ZREM":    {Name: "ZREM", MinArgs: 2, MaxArgs: -1, Group: "ZSET"},
	"ZRANGE":  {Name: "ZRANGE", MinArgs: 3, MaxArgs: -1, Group: "ZSET"},
	"ZCARD":   {Name: "ZCARD", MinArgs: 1, MaxArgs: 1, Group: "ZSET"},
	"ZSCORE":  {Name: "ZSCORE", MinArgs: 2, MaxArgs: 2, Group: "ZSET"},
	"ZINCRBY": {Name: "ZINCRBY", MinArgs: 3, MaxArgs: 3, Group: "ZSET"},

	// ========== GROUP 6: KEY ==========
	"DEL":     {Name: "DEL", MinArgs: 1, MaxArgs: -1, Group: "KEY"},
	"EXISTS":  {Name: "EXISTS", MinArgs: 1, MaxArgs: -1, Group: "KEY"},
	"EXPIRE":  {Name: "EXPIRE", MinArgs: 2, MaxArgs: 3, Group: "KEY"},
	"TTL":     {Name: "TTL", MinArgs: 1, MaxArgs: 1, Group: "KEY"},
	"PERSIST": {Name: "PERSIST", MinArgs: 1, MaxArgs: 1, Group: "KEY"},
	"TYPE":    {Name: "TYPE", MinArgs: 1, MaxArgs: 1, Group: "KEY"},
	"KEYS":    {Name: "KEYS", MinArgs: 1, MaxArgs: 1, Group: "KEY"},
	"SCAN":    {Name: "SCAN", MinArgs: 1, MaxArgs: -1, Group: "KEY"},
	"RENAME":  {Name: "RENAME", MinArgs: 2, MaxArgs: 2, Group: "KEY"},

	// ========== GROUP 7: SERVER ==========
	"PING":     {Name: "PING", MinArgs: 0, MaxArgs: 1, Group: "SERVER"},
	"ECHO":     {Name: "ECHO", MinArgs: 1, MaxArgs: 1, Group: "SERVER"},
	"SELECT":   {Name: "SELECT", MinArgs: 1, MaxArgs: 1, Group: "SERVER"},
	"DBSIZE":   {Name: "DBSIZE", MinArgs: 0, MaxArgs: 0, Group: "SERVER"},
	"FLUSHDB":  {Name: "FLUSHDB", MinArgs: 0, MaxArgs: 1, Group: "SERVER"},
	"FLUSHALL": {Name: "FLUSHALL", MinArgs: 0, MaxArgs: 1, Group: "SERVER"},
}

// CommandNames - sorted list of known command names, built from Commands
var CommandNames []string

func init() {
	CommandNames = make([]string, 0, len(Commands))
	for name := range Commands {
		CommandNames = append(CommandNames, name)
	}
	sort.Strings(CommandNames)
}

// Lookup returns the definition for a command name (case-insensitive)
func Lookup(name string) (CommandDefinition, bool) {
	def, ok := Commands[strings.ToUpper(name)]
	return def, ok
}

// IsKnownCommand checks if a command name is in the table
func IsKnownCommand(name string) bool {
	_, ok := Commands[strings.ToUpper(name)]
	return ok
}

package redisrepo

import "fmt"

const (
	SESSION_USER_KEY = "session-user:%s" // <username>
)

func SessionUserKey(username string) string {
	return fmt.Sprintf(SESSION_USER_KEY, username)
}

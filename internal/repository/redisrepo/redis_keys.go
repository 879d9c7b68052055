package redisrepo

import "fmt"

const (
	POST_KEY = "post:%d" // <postID>
)

func PostKey(postID int64) string {
	return fmt.Sprintf(POST_KEY, postID)
}

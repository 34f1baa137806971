package model

// A follow is one logical edge persisted in two directed tables
// ("following" and "followers") so both query directions stay cheap.
// The two tables are written in lockstep inside a single transaction.
type FollowEdge struct {
	Follower string `json:"follower"`
	Followee string `json:"followee"`
}

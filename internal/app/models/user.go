package models

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Username  string `json:"username" bson:"username"`
	Password  string `json:"-" bson:"password"`
	Role      string `json:"role" bson:"role"`
	HealthID  string `json:"healthId,omitempty" bson:"healthId,omitempty"`
	TimeModel `bson:",inline"`
}

package model

type Message struct {
	Id          string `json:"id"`
	SenderId    string `json:"senderId"`
	RecipientId string `json:"recipientId"`
	Text        string `json:"text"`
	CreatedAt   string `json:"createdAt"`
}

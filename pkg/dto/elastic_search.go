package dto

type ElasticsearchIndexAck struct {
	Index   string     `json:"_index"`
	ID      string     `json:"_id"`
	Result  string     `json:"result"`
	Shards  ShardsInfo `json:"_shards"`
	Version int        `json:"_version"`
}

type ShardsInfo struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

package entity

import "time"

// MediaAsset is an image stored in the hosted image bucket.
type MediaAsset struct {
	PublicID string    `json:"publicId"`
	URL      string    `json:"url"`
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"modTime"`
}

// MediaPage is one page of a bucket listing.
type MediaPage struct {
	Assets    []MediaAsset `json:"assets"`
	NextToken string       `json:"nextToken,omitempty"`
}

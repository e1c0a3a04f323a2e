package domain

import "strings"

// CreativeSpec is the content of an ad.
type CreativeSpec struct {
	Name            string           `json:"name,omitempty"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec,omitempty"`
}

// ObjectStorySpec is the page post the creative renders as.
type ObjectStorySpec struct {
	PageID   string    `json:"page_id,omitempty"`
	LinkData *LinkData `json:"link_data,omitempty"`
}

// LinkData is a link ad. Name is the headline and Message the body text.
type LinkData struct {
	Link         string        `json:"link"`
	Message      string        `json:"message,omitempty"`
	Name         string        `json:"name,omitempty"`
	Description  string        `json:"description,omitempty"`
	ImageHash    string        `json:"image_hash,omitempty"`
	Picture      string        `json:"picture,omitempty"`
	CallToAction *CallToAction `json:"call_to_action,omitempty"`
}

// CallToAction is the button rendered on a link ad.
type CallToAction struct {
	Type string `json:"type"`
}

// Link returns the destination link or "" when the creative has none.
func (c *CreativeSpec) Link() string {
	if ld := c.linkData(); ld != nil {
		return strings.TrimSpace(ld.Link)
	}
	return ""
}

// Headline returns the link headline.
func (c *CreativeSpec) Headline() string {
	if ld := c.linkData(); ld != nil {
		return strings.TrimSpace(ld.Name)
	}
	return ""
}

// Body returns the primary text.
func (c *CreativeSpec) Body() string {
	if ld := c.linkData(); ld != nil {
		return strings.TrimSpace(ld.Message)
	}
	return ""
}

func (c *CreativeSpec) linkData() *LinkData {
	if c == nil || c.ObjectStorySpec == nil {
		return nil
	}
	return c.ObjectStorySpec.LinkData
}

func (c *CreativeSpec) clone() *CreativeSpec {
	if c == nil {
		return nil
	}
	out := *c
	if c.ObjectStorySpec != nil {
		oss := *c.ObjectStorySpec
		if oss.LinkData != nil {
			ld := *oss.LinkData
			if ld.CallToAction != nil {
				cta := *ld.CallToAction
				ld.CallToAction = &cta
			}
			oss.LinkData = &ld
		}
		out.ObjectStorySpec = &oss
	}
	return &out
}

package service

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PublisherTestSuite struct {
	suite.Suite
	publisher *publisher
}

func (s *PublisherTestSuite) SetupTest() {
	s.publisher = newPublisher()
}

func (s *PublisherTestSuite) TestSubscriberGetsCurrentStateFirst() {
	updates, unsubscribe := s.publisher.subscribe(State{IsLoading: true})
	defer unsubscribe()

	s.True((<-updates).IsLoading)
}

func (s *PublisherTestSuite) TestSlowSubscriberKeepsLatest() {
	updates, unsubscribe := s.publisher.subscribe(State{})
	defer unsubscribe()

	for _, message := range []string{"first", "second", "third"} {
		m := message
		s.publisher.publish(State{ErrorMessage: &m})
	}

	latest := <-updates
	s.Equal("third", latest.Message())

	select {
	case <-updates:
		s.Fail("expected a single pending state")
	default:
	}
}

func (s *PublisherTestSuite) TestFanOut() {
	first, unsubscribeFirst := s.publisher.subscribe(State{})
	second, unsubscribeSecond := s.publisher.subscribe(State{})
	defer unsubscribeSecond()

	s.Equal(2, s.publisher.len())

	unsubscribeFirst()
	s.Equal(1, s.publisher.len())

	_, ok := <-first
	s.False(ok)

	s.publisher.publish(State{IsLoading: true})
	s.True((<-second).IsLoading)
}

func (s *PublisherTestSuite) TestClose() {
	updates, unsubscribe := s.publisher.subscribe(State{})
	<-updates

	s.publisher.close()
	s.publisher.close()
	unsubscribe()

	_, ok := <-updates
	s.False(ok)
	s.Equal(0, s.publisher.len())

	late, _ := s.publisher.subscribe(State{})
	_, ok = <-late
	s.False(ok)

	s.publisher.publish(State{IsLoading: true})
}

func TestPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// default size for a queue when the size tag is missing
const defaultQueueSize = 1000

// Message - message to put into a queue
type Message struct {
	Command    string   // the message type
	Parameters [][]byte // list of binary parameters
}

// Queue - structure of a 1:1 queue
type Queue struct {
	c chan Message
}

// BroadcastQueue - structure of a 1:M queue
//
// each subscriber gets a separate channel and delivery is
// non-blocking, a subscriber that stops draining loses messages
type BroadcastQueue struct {
	sync.Mutex
	in          chan Message
	subscribers []chan Message
	cache       map[string]Message
}

// busses - all of the queues
type busses struct {
	Broadcast *BroadcastQueue `size:"1000"` // offerings, recoveries and administrator changes
	TestQueue *Queue          `size:"50"`   // for testing use
}

// Bus - all available message queues
var Bus busses

// commands that are kept in the broadcast cache
//
// a cached command with identical parameters is only delivered once,
// the offering and asset records can never legitimately repeat since
// a duplicate instance or asset is refused before any broadcast
func isCacheable(command string) bool {
	switch command {
	case "offering", "asset":
		return true
	default:
		return false
	}
}

// create all queues and start the broadcast relay
func init() {

	busType := reflect.TypeOf(Bus)
	busValue := reflect.ValueOf(&Bus).Elem()

	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)
		sizeTag := fieldInfo.Tag.Get("size")

		queueSize := defaultQueueSize

		if len(sizeTag) > 0 {
			s, err := strconv.Atoi(sizeTag)
			if nil != err || s <= 0 {
				m := fmt.Sprintf("queue: %q has invalid size: %q", fieldInfo.Name, sizeTag)
				panic(m)
			}
			queueSize = s
		}

		switch qt := busValue.Field(i).Type(); qt {

		case reflect.TypeOf((*BroadcastQueue)(nil)):
			q := &BroadcastQueue{
				in:          make(chan Message, queueSize),
				subscribers: make([]chan Message, 0, 10),
				cache:       make(map[string]Message),
			}
			go q.relay()
			busValue.Field(i).Set(reflect.ValueOf(q))

		case reflect.TypeOf((*Queue)(nil)):
			q := &Queue{
				c: make(chan Message, queueSize),
			}
			busValue.Field(i).Set(reflect.ValueOf(q))

		default:
			m := fmt.Sprintf("queue: %q has unsupported type: %q", fieldInfo.Name, qt)
			panic(m)
		}
	}
}

// cache key is the command followed by all parameter bytes
func cacheKey(command string, parameters [][]byte) string {
	key := command
	for _, p := range parameters {
		key += string(p)
	}
	return key
}

// DropCache - remove a message from the broadcast cache so an
// identical message can be sent again
func DropCache(message Message) {
	queue := Bus.Broadcast
	queue.Lock()
	delete(queue.cache, cacheKey(message.Command, message.Parameters))
	queue.Unlock()
}

// Queue
// -----

// Send - send a message to a 1:1 queue
//
// blocks if the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from a 1:1 queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Release - discard all pending messages in a 1:1 queue
func (queue *Queue) Release() {
loop:
	for {
		select {
		case <-queue.c:
		default:
			break loop
		}
	}
}

// BroadcastQueue
// --------------

// Send - send a message to all current subscribers
//
// a cacheable message that was already sent is dropped
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {

	if isCacheable(command) {
		key := cacheKey(command, parameters)
		queue.Lock()
		_, cached := queue.cache[key]
		if !cached {
			queue.cache[key] = Message{
				Command:    command,
				Parameters: parameters,
			}
		}
		queue.Unlock()
		if cached {
			return
		}
	}

	queue.in <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Cached - snapshot of the cached messages
//
// used by the publisher to rebroadcast announcements so a subscriber
// that connected late still receives them
func (queue *BroadcastQueue) Cached() []Message {
	queue.Lock()
	messages := make([]Message, 0, len(queue.cache))
	for _, message := range queue.cache {
		messages = append(messages, message)
	}
	queue.Unlock()
	return messages
}

// Chan - get a new channel to read from a 1:M queue
//
// each call returns a distinct new channel
// a size of zero gives an unbuffered channel
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = 0
	}
	c := make(chan Message, size)
	queue.Lock()
	queue.subscribers = append(queue.subscribers, c)
	queue.Unlock()
	return c
}

// Release - disconnect all subscribers and discard the cache
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	for _, c := range queue.subscribers {
		close(c)
	}
	queue.subscribers = nil
	queue.cache = make(map[string]Message)
	queue.Unlock()
}

// distribute incoming messages to all subscribers
//
// delivery is non-blocking so an idle subscriber or an empty
// subscriber list just drops the message
func (queue *BroadcastQueue) relay() {
	for message := range queue.in {
		queue.Lock()
		for _, c := range queue.subscribers {
			select {
			case c <- message:
			default:
			}
		}
		queue.Unlock()
	}
}

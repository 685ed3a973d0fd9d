// Package delivery contains the channels a notification can be delivered over.
//
// Every strategy takes the final, fully decorated content string and performs
// its side effect. The console strategies only print what they would send;
// they fail only when their writer fails.
package delivery

/*
Package machines bundles ready-made Machine definitions.

These are sample configurations, not engine behavior: they exercise the
engine exactly like any host-constructed machine would. Use them as
living documentation for how to declare your own.
*/
package machines

package app

// ProductDirName is the per-user directory under the OS config root that
// holds client.env and the startup log.
const ProductDirName = "CRA Client"
